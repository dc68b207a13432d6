package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID             uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName      string    `json:"firstName" gorm:"not null"`
	LastName       string    `json:"lastName" gorm:"not null"`
	SecondLastName string    `json:"secondLastName,omitempty"`
	Email          string    `json:"email" gorm:"not null;uniqueIndex"`
	Phone          string    `json:"phone,omitempty"`
	Active         bool      `json:"active" gorm:"not null;default:true"`
	AddressID      *uint64   `json:"-"`
	Address        *Address  `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	RegisteredAt   time.Time `json:"registeredAt" gorm:"autoCreateTime"`
}

type Address struct {
	ID             uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Street         string `json:"street"`
	ExteriorNumber string `json:"exteriorNumber,omitempty"`
	InteriorNumber string `json:"interiorNumber,omitempty"`
	Neighborhood   string `json:"neighborhood"`
	PostalCode     string `json:"postalCode"`
	// REFERENCES is reserved in MySQL, hence the explicit column name.
	References string `json:"references,omitempty" gorm:"column:reference_notes"`
	CityID     uint64 `json:"-" gorm:"not null"`
	City           *City  `json:"city,omitempty" gorm:"foreignKey:CityID"`
}

type City struct {
	ID      uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"not null"`
	StateID uint64 `json:"-" gorm:"not null"`
	State   *State `json:"state,omitempty" gorm:"foreignKey:StateID"`
}

type State struct {
	ID        uint64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string   `json:"name" gorm:"not null"`
	CountryID uint64   `json:"-" gorm:"not null"`
	Country   *Country `json:"country,omitempty" gorm:"foreignKey:CountryID"`
}

type Country struct {
	ID   uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"not null"`
}

// CustomerProfile is the flat read model assembled from the normalized
// address chain in one joined query.
type CustomerProfile struct {
	CustomerID     uint64 `json:"customerId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	SecondLastName string `json:"secondLastName,omitempty"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Street         string `json:"street,omitempty"`
	ExteriorNumber string `json:"exteriorNumber,omitempty"`
	InteriorNumber string `json:"interiorNumber,omitempty"`
	Neighborhood   string `json:"neighborhood,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	References     string `json:"references,omitempty" gorm:"column:reference_notes"`
	CityName       string `json:"city,omitempty"`
	StateName      string `json:"state,omitempty"`
	CountryName    string `json:"country,omitempty"`
}

// CustomerStatistics aggregates a customer's order history for the profile
// view. Average is zero and FirstOrderAt nil when there are no orders.
type CustomerStatistics struct {
	TotalOrders     int             `json:"totalOrders"`
	ActiveOrders    int             `json:"activeOrders"`
	SpecialOrders   int             `json:"specialOrders"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	AveragePerOrder decimal.Decimal `json:"averagePerOrder"`
	FirstOrderAt    *time.Time      `json:"firstOrderAt,omitempty"`
}
