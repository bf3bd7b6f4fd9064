// Package static holds the fixed kiosk menu. Prices are cents.
package static

import (
	"slices"

	"github.com/rushmorepizza/kiosk/internal/menu/domain"
)

type MenuRepo struct{}

func NewMenuRepo() *MenuRepo { return &MenuRepo{} }

var pizzas = []domain.Pizza{
	{Code: "1", Name: "Classic", BoxPrice: 340},
	{Code: "2", Name: "Chicken", BoxPrice: 450},
	{Code: "3", Name: "Pepperoni", BoxPrice: 400},
	{Code: "4", Name: "Deluxe", BoxPrice: 600},
	{Code: "5", Name: "Vegetable", BoxPrice: 400},
	{Code: "6", Name: "Chocolate", BoxPrice: 1200},
	{Code: "7", Name: "Cheese", BoxPrice: 500},
	{Code: "8", Name: "Hawaiian", BoxPrice: 700},
	{Code: "9", Name: "Greek", BoxPrice: 800},
}

var extraCategories = []domain.ExtraCategory{
	{
		Name: "sides",
		Items: []domain.Extra{
			{Name: "Fries", Price: 150},
			{Name: "Potato Wedges", Price: 200},
			{Name: "Chicken Strippers", Price: 250},
			{Name: "Garlic Bread", Price: 175},
			{Name: "Chicken Wings", Price: 300},
		},
	},
	{
		Name: "drinks",
		Items: []domain.Extra{
			{Name: "Diet Cola", Price: 120},
			{Name: "Coca-Cola", Price: 130},
			{Name: "Fanta", Price: 125},
			{Name: "Barr", Price: 100},
			{Name: "Monster", Price: 200},
			{Name: "Sprite", Price: 125},
			{Name: "7-up", Price: 125},
			{Name: "Water", Price: 90},
			{Name: "Juice", Price: 150},
		},
	},
	{
		Name: "toppings",
		Items: []domain.Extra{
			{Name: "Onions", Price: 50},
			{Name: "Sweet Corn", Price: 50},
			{Name: "Jalapeno", Price: 60},
			{Name: "Olives", Price: 60},
			{Name: "Mushrooms", Price: 70},
			{Name: "Bacon", Price: 100},
			{Name: "Cheese", Price: 80},
		},
	},
	{
		Name: "dips",
		Items: []domain.Extra{
			{Name: "Herb", Price: 50},
			{Name: "BBQ", Price: 50},
			{Name: "RedHot", Price: 50},
			{Name: "Sweet Icing", Price: 50},
			{Name: "Garlic", Price: 50},
			{Name: "Salad Cream", Price: 50},
		},
	},
	{
		Name: "dessert",
		Items: []domain.Extra{
			{Name: "Vanilla", Price: 250},
			{Name: "Cookies", Price: 180},
			{Name: "Cheesecake", Price: 300},
			{Name: "Jam Tart", Price: 150},
			{Name: "Semolina", Price: 170},
			{Name: "Gateaux", Price: 320},
			{Name: "Strawberry Mousse", Price: 280},
		},
	},
}

// Pizzas and ExtraCategories hand out copies so callers cannot mutate
// the catalog.
func (r *MenuRepo) Pizzas() []domain.Pizza { return slices.Clone(pizzas) }

func (r *MenuRepo) ExtraCategories() []domain.ExtraCategory {
	cats := slices.Clone(extraCategories)
	for i := range cats {
		cats[i].Items = slices.Clone(cats[i].Items)
	}
	return cats
}
