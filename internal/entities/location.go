package entities

type Location struct {
	Code UnLocode
	Name string
}
