package datasource

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/myezz/restaurant-api/pkg/db/models"
	"github.com/myezz/restaurant-api/pkg/enums"
	"github.com/myezz/restaurant-api/pkg/types"
)

// FixtureSet is the demo data served when no database is available.
type FixtureSet struct {
	Restaurant models.Restaurant
	Menu       []models.MenuItem
	Orders     []models.Order
}

const (
	fixtureHistoryDays = 30
	fixtureOpenHour    = 9
	fixtureCloseHour   = 21
)

type fixtureDish struct {
	name     string
	category string
	price    int64
	isVeg    bool
	inStock  bool
}

var fixtureMenu = []fixtureDish{
	{"Paneer Tikka", "Starters", 180, true, true},
	{"Chicken 65", "Starters", 220, false, true},
	{"Veg Spring Rolls", "Starters", 150, true, true},
	{"Butter Chicken", "Mains", 320, false, true},
	{"Dal Makhani", "Mains", 240, true, true},
	{"Veggie Pizza (Large)", "Mains", 380, true, true},
	{"Chicken Biryani", "Mains", 280, false, true},
	{"Tandoori Roti", "Breads", 45, true, true},
	{"Butter Naan", "Breads", 55, true, true},
	{"Garlic Naan", "Breads", 65, true, false},
	{"Mango Lassi", "Beverages", 80, true, true},
	{"Masala Chai", "Beverages", 40, true, true},
	{"Gulab Jamun", "Desserts", 90, true, true},
}

var fixtureCustomers = []string{
	"Yug Patel", "Aksh Maheshwari", "Nayan Chellani", "Riya Shah", "Kabir Mehta",
	"Ananya Iyer", "Dev Joshi", "Meera Nair", "Arjun Rao", "Isha Desai",
	"Vihaan Gupta", "Sara Khan", "Rohan Verma", "Tara Menon",
}

// GenerateFixtures builds a deterministic demo data set for the restaurant:
// the standard menu, thirty days of order history between 9:00 and 21:59,
// today's orders up to now and three live orders on the kanban board.
// The same seed and now always produce the same rows.
func GenerateFixtures(restaurantID uuid.UUID, now time.Time, seed uint64) FixtureSet {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	set := FixtureSet{
		Restaurant: models.Restaurant{
			ID:           restaurantID,
			Name:         "MyEzz Demo Kitchen",
			BusinessName: "MyEzz Foods Pvt Ltd",
			GSTIN:        "27AAPFU0939F1ZV",
			IsOnline:     true,
			CreatedAt:    now.AddDate(0, 0, -fixtureHistoryDays-1),
			UpdatedAt:    now,
		},
	}

	for i, dish := range fixtureMenu {
		set.Menu = append(set.Menu, models.MenuItem{
			ID:           fixtureID(restaurantID, fmt.Sprintf("menu-%d", i)),
			RestaurantID: restaurantID,
			Name:         dish.name,
			Category:     dish.category,
			Price:        decimal.NewFromInt(dish.price),
			IsVeg:        dish.isVeg,
			InStock:      dish.inStock,
			CreatedAt:    set.Restaurant.CreatedAt,
			UpdatedAt:    set.Restaurant.CreatedAt,
		})
	}

	seq := 0
	nextCode := func() string {
		seq++
		return fmt.Sprintf("ORD%03d", seq)
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	for offset := fixtureHistoryDays; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		count := 4 + rng.IntN(9)
		stamps := make([]time.Time, 0, count)
		for range count {
			hour := fixtureOpenHour + rng.IntN(fixtureCloseHour-fixtureOpenHour+1)
			stamp := day.Add(time.Duration(hour)*time.Hour + time.Duration(rng.IntN(60))*time.Minute)
			if !stamp.Before(now) {
				continue
			}
			stamps = append(stamps, stamp)
		}
		slices.SortFunc(stamps, time.Time.Compare)
		for _, stamp := range stamps {
			set.Orders = append(set.Orders, historicOrder(rng, restaurantID, nextCode(), stamp))
		}
	}

	set.Orders = append(set.Orders, liveOrders(restaurantID, now, nextCode)...)
	return set
}

func historicOrder(rng *rand.Rand, restaurantID uuid.UUID, code string, createdAt time.Time) models.Order {
	order := models.Order{
		ID:               fixtureID(restaurantID, code),
		RestaurantID:     restaurantID,
		OrderCode:        code,
		CustomerName:     fixtureCustomers[rng.IntN(len(fixtureCustomers))],
		Status:           historicStatus(rng),
		VerificationCode: fixtureCode(rng),
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}

	total := decimal.Zero
	lines := 1 + rng.IntN(3)
	for range lines {
		dish := fixtureMenu[rng.IntN(len(fixtureMenu))]
		qty := 1 + rng.IntN(2)
		price := float64(dish.price)
		order.Items = append(order.Items, types.OrderItem{Name: dish.name, Quantity: qty, Price: &price})
		total = total.Add(decimal.NewFromInt(dish.price * int64(qty)))
	}
	order.Total = total

	if order.Status.IsAccepted() {
		prep := 10 + rng.IntN(31)
		accepted := createdAt.Add(time.Duration(1+rng.IntN(4)) * time.Minute)
		order.PrepTime = &prep
		order.AcceptedAt = &accepted
	}
	if order.Status == enums.OrderStatusRejected {
		reason := "Item unavailable"
		order.RejectionReason = &reason
	}
	return order
}

func historicStatus(rng *rand.Rand) enums.OrderStatus {
	switch roll := rng.IntN(100); {
	case roll < 6:
		return enums.OrderStatusRejected
	case roll < 10:
		return enums.OrderStatusCancelled
	case roll < 40:
		return enums.OrderStatusCompleted
	default:
		return enums.OrderStatusDelivered
	}
}

// liveOrders are the three cards the board shows on a fresh start.
func liveOrders(restaurantID uuid.UUID, now time.Time, nextCode func() string) []models.Order {
	price := func(v float64) *float64 { return &v }
	prep := 25
	accepted := now.Add(-5 * time.Minute)

	build := func(customer string, status enums.OrderStatus, verification string, total string, items types.OrderItems) models.Order {
		code := nextCode()
		return models.Order{
			ID:               fixtureID(restaurantID, code),
			RestaurantID:     restaurantID,
			OrderCode:        code,
			CustomerName:     customer,
			Items:            items,
			Total:            decimal.RequireFromString(total),
			Status:           status,
			VerificationCode: verification,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	}

	fresh := build("Yug Patel", enums.OrderStatusNew, "A1B2", "249.99", types.OrderItems{
		{Name: "Margherita Pizza", Quantity: 1, Price: price(179.99)},
		{Name: "Caesar Salad", Quantity: 1, Price: price(70)},
	})
	cooking := build("Aksh Maheshwari", enums.OrderStatusPreparing, "C3D4", "185.00", types.OrderItems{
		{Name: "Chicken Burger", Quantity: 2, Price: price(70)},
		{Name: "French Fries", Quantity: 1, Price: price(45)},
	})
	cooking.PrepTime = &prep
	cooking.AcceptedAt = &accepted
	ready := build("Nayan Chellani", enums.OrderStatusReady, "E5F6", "157.50", types.OrderItems{
		{Name: "Pasta Carbonara", Quantity: 1, Price: price(157.5)},
	})

	return []models.Order{fresh, cooking, ready}
}

func fixtureID(restaurantID uuid.UUID, name string) uuid.UUID {
	return uuid.NewSHA1(restaurantID, []byte(name))
}

func fixtureCode(rng *rand.Rand) string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	out := make([]byte, 4)
	for i := range out {
		out[i] = charset[rng.IntN(len(charset))]
	}
	return string(out)
}

