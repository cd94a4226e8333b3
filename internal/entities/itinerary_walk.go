package entities

type cursorPhase int

const (
	awaitingReceive cursorPhase = iota
	awaitingLoad
	awaitingUnload
	awaitingClaim
	completed
)

// routeCursor - указатель на следующую непройденную границу ноги маршрута.
type routeCursor struct {
	legs  []Leg
	phase cursorPhase
	leg   int
}

// advance сдвигает курсор, если событие совпадает с ожидаемой границей.
// Таможня на маршрут не влияет и всегда допустима.
func (c routeCursor) advance(e HandlingEvent) (routeCursor, bool) {
	switch e.Type {
	case Customs:
		return c, true

	case Receive:
		if c.phase == awaitingReceive && e.Location == c.legs[0].LoadLocation {
			return routeCursor{legs: c.legs, phase: awaitingLoad, leg: 0}, true
		}

	case Load:
		if c.phase != awaitingLoad {
			break
		}
		leg := c.legs[c.leg]
		if e.Location == leg.LoadLocation && e.VoyageNumber == leg.VoyageNumber {
			return routeCursor{legs: c.legs, phase: awaitingUnload, leg: c.leg}, true
		}

	case Unload:
		if c.phase != awaitingUnload {
			break
		}
		// груз может остаться на борту, если следующие ноги идут тем же рейсом
		voyage := c.legs[c.leg].VoyageNumber
		for j := c.leg; j < len(c.legs) && c.legs[j].VoyageNumber == voyage; j++ {
			if e.VoyageNumber != voyage || e.Location != c.legs[j].UnloadLocation {
				continue
			}
			if j == len(c.legs)-1 {
				return routeCursor{legs: c.legs, phase: awaitingClaim, leg: j}, true
			}
			return routeCursor{legs: c.legs, phase: awaitingLoad, leg: j + 1}, true
		}

	case Claim:
		if c.phase == awaitingClaim && e.Location == c.legs[len(c.legs)-1].UnloadLocation {
			return routeCursor{legs: c.legs, phase: completed, leg: c.leg}, true
		}
	}

	return c, false
}

func (c routeCursor) nextActivity() (HandlingActivity, bool) {
	switch c.phase {
	case awaitingReceive:
		return HandlingActivity{Type: Receive, Location: c.legs[0].LoadLocation}, true
	case awaitingLoad:
		leg := c.legs[c.leg]
		return HandlingActivity{Type: Load, Location: leg.LoadLocation, VoyageNumber: leg.VoyageNumber}, true
	case awaitingUnload:
		leg := c.legs[c.leg]
		return HandlingActivity{Type: Unload, Location: leg.UnloadLocation, VoyageNumber: leg.VoyageNumber}, true
	case awaitingClaim:
		return HandlingActivity{Type: Claim, Location: c.legs[len(c.legs)-1].UnloadLocation}, true
	case completed:
		return HandlingActivity{}, false
	}
	return HandlingActivity{}, false
}

// ItineraryWalk - результат прохода истории обработки по маршруту.
type ItineraryWalk struct {
	// Misdirected - какое-то событие не совпало с ожидаемой границей ноги.
	Misdirected bool
	// DivergedAt - первое событие, разошедшееся с маршрутом (только при Misdirected).
	DivergedAt HandlingEvent

	cursor routeCursor
}

// NextExpectedActivity - следующая обработка, которую предсказывает маршрут.
func (w ItineraryWalk) NextExpectedActivity() (HandlingActivity, bool) {
	if w.Misdirected || len(w.cursor.legs) == 0 {
		return HandlingActivity{}, false
	}
	return w.cursor.nextActivity()
}

// Walk проходит всю историю по текущему маршруту.
//
// Проход начинается с события входа в маршрут: RECEIVE в начальной точке,
// если это первое нетаможенное событие, либо первый UNLOAD в начальной точке
// (груз после перемаршрутизации). События до входа относятся к прошлому плану
// и не оцениваются. Без события входа проход идёт с начала и ждёт RECEIVE.
// Первое несовпадение делает груз misdirected, дальше история не смотрится.
func (it Itinerary) Walk(history HandlingHistory) ItineraryWalk {
	if it.IsEmpty() {
		return ItineraryWalk{}
	}

	events := history.Events()
	cursor := routeCursor{legs: it.legs, phase: awaitingReceive}

	if k, ok := entryIndex(events, it.InitialDepartureLocation()); ok {
		events = events[k+1:]
		cursor = routeCursor{legs: it.legs, phase: awaitingLoad, leg: 0}
	}

	for _, e := range events {
		next, ok := cursor.advance(e)
		if !ok {
			return ItineraryWalk{Misdirected: true, DivergedAt: e, cursor: cursor}
		}
		cursor = next
	}

	return ItineraryWalk{cursor: cursor}
}

func entryIndex(events []HandlingEvent, origin UnLocode) (int, bool) {
	for i, e := range events {
		if e.Type == Customs {
			continue
		}
		if e.Type == Receive && e.Location == origin {
			return i, true
		}
		break
	}

	for i, e := range events {
		if e.Type == Unload && e.Location == origin {
			return i, true
		}
	}
	return 0, false
}
