package catalog

import "github.com/guswanstore/guswanmy/internal/models"

// builtin is the shipped catalog. Prices are in rupiah.
var builtin = map[string][]models.Product{
	"bot": {
		{
			ID:          "invisible-trap",
			Name:        "INVISIBLE TRAP",
			Description: "Bot pemburu dengan teknologi invisibility terdepan",
			Icon:        "/images/product-invisible-trap.jpg",
			Color:       "from-blue-500 to-purple-500",
			Pricing: []models.PriceTier{
				{Duration: "7 Hari", Price: 45000},
				{Duration: "30 Hari", Price: 145000},
				{Duration: "Permanen", Price: 200000},
			},
		},
		{
			ID:          "guswanbotz",
			Name:        "GUSWANBOTZ BETA",
			Description: "Bot premium untuk Discord dengan fitur lengkap",
			Icon:        "/images/product-guswanbotz.jpg",
			Color:       "from-indigo-500 to-blue-500",
			Pricing: []models.PriceTier{
				{Duration: "7 Hari", Price: 20000},
				{Duration: "30 Hari", Price: 50000},
				{Duration: "Permanen", Price: 135000},
			},
		},
	},
	"executor": {
		{
			ID:          "wave",
			Name:        "WAVE",
			Description: "Executor Roblox dengan performa tinggi dan stabil",
			Icon:        "/images/product-wave.jpg",
			Color:       "from-cyan-500 to-blue-500",
			Pricing: []models.PriceTier{
				{Duration: "7 Hari", Price: 175000},
				{Duration: "30 Hari", Price: 425000},
			},
		},
		{
			ID:          "awp",
			Name:        "AWP",
			Description: "Script executor profesional untuk game development",
			Icon:        "/images/product-awp.jpg",
			Color:       "from-orange-500 to-red-500",
			Pricing: []models.PriceTier{
				{Duration: "7 Hari", Price: 150000},
				{Duration: "30 Hari", Price: 267000},
			},
		},
		{
			ID:          "seliware",
			Name:        "SELIWARE",
			Description: "Tools advanced untuk modifikasi game Roblox",
			Icon:        "/images/product-seliware.jpg",
			Color:       "from-red-500 to-pink-500",
			Pricing: []models.PriceTier{
				{Duration: "7 Hari", Price: 120000},
				{Duration: "30 Hari", Price: 235000},
			},
		},
	},
	"script": {
		{
			ID:          "bananahub",
			Name:        "BANANAHUB",
			Description: "Koleksi script premium untuk berbagai game",
			Icon:        "/images/product-bananahub.jpg",
			Color:       "from-yellow-500 to-orange-500",
			Pricing: []models.PriceTier{
				{Duration: "Permanen", Price: 95000},
			},
		},
		{
			ID:          "maruhub",
			Name:        "MARUHUB",
			Description: "Script hub dengan update reguler dan support terbaik",
			Icon:        "/images/product-maruhub.jpg",
			Color:       "from-green-500 to-emerald-500",
			Pricing: []models.PriceTier{
				{Duration: "Permanen", Price: 85000},
				{Duration: "permanen[pc]", Price: 115000},
			},
		},
	},
}
