package location

type LocationDB struct {
	Code string
	Name string
}
