package repository

type ListOptions struct {
	Search string
	Limit  int
	Offset int
}
