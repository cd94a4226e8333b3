package location

import "tracking/internal/entities"

func ToDomain(l *LocationDB) entities.Location {
	return entities.Location{
		Code: entities.UnLocode(l.Code),
		Name: l.Name,
	}
}
