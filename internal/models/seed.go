package models

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed creates an initial set of categories with expenses.
// It does nothing when categories already exist.
func Seed(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	categories := []Category{
		{
			Name:   "Household",
			Budget: decimal.NewFromInt(15000),
			Expenses: []Expense{
				{Description: "Dell laptop", Amount: decimal.NewFromInt(6500)},
				{Description: "Bosch dishwasher", Amount: decimal.NewFromInt(2500)},
				{Description: "Washing machine", Amount: decimal.NewFromInt(3000)},
			},
		},
		{
			Name:   "Travel",
			Budget: decimal.NewFromInt(1000),
			Expenses: []Expense{
				{Description: "Fuel", Amount: decimal.NewFromInt(500)},
				{Description: "Fuel, second fill-up", Amount: decimal.NewFromInt(250)},
				{Description: "Toll fees", Amount: decimal.NewFromInt(50)},
			},
		},
		{
			Name:   "Gaming",
			Budget: decimal.NewFromInt(100),
			Expenses: []Expense{
				{Description: "Skins", Amount: decimal.NewFromInt(50)},
			},
		},
	}

	err = db.Create(&categories).Error
	if err != nil {
		return err
	}

	log.Info().Int("categories", len(categories)).Msg("seeded database")
	return nil
}
