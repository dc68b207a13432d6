package mysql

import (
	"github.com/Dany1912-dev/ProyectoMetodologia/internal/domain"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func New(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&domain.Country{},
		&domain.State{},
		&domain.City{},
		&domain.Address{},
		&domain.Customer{},
		&domain.Order{},
		&domain.OrderLine{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
