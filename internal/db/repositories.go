package db

import "gorm.io/gorm"

type Repositories struct {
	Staff     *StaffRepository
	Clients   *ClientRepository
	Directory *DirectoryRepository
	Care      *CareRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Staff:     NewStaffRepository(database),
		Clients:   NewClientRepository(database),
		Directory: NewDirectoryRepository(database),
		Care:      NewCareRepository(database),
	}
}
