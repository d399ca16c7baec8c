package repository

type ListOptions struct {
	Search string
	Status string
	Limit  int
	Offset int
}
