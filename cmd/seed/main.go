package main

import (
	"fmt"

	"github.com/mercadoclone/api/internal/config"
	"github.com/mercadoclone/api/internal/constants"
	"github.com/mercadoclone/api/internal/logger"
	"github.com/mercadoclone/api/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitDefaultDisplaySettings(); err != nil {
		stdLog.Fatalf("Failed to seed display settings: %v", err)
	}

	categories := []models.Category{
		{Name: "Tecnologia", Slug: "tecnologia", Icon: "Smartphone"},
		{Name: "Eletrodomésticos", Slug: "eletrodomesticos", Icon: "Refrigerator"},
		{Name: "Moda", Slug: "moda", Icon: "Shirt"},
		{Name: "Casa e Decoração", Slug: "casa-decoracao", Icon: "Home"},
		{Name: "Esportes", Slug: "esportes", Icon: "Dumbbell"},
		{Name: "Veículos", Slug: "veiculos", Icon: "Car"},
		{Name: "Supermercado", Slug: "supermercado", Icon: "ShoppingCart"},
		{Name: "Beleza", Slug: "beleza", Icon: "Sparkles"},
		{Name: "Brinquedos", Slug: "brinquedos", Icon: "Gamepad2"},
		{Name: "Ferramentas", Slug: "ferramentas", Icon: "Wrench"},
		{Name: "Livros", Slug: "livros", Icon: "BookOpen"},
		{Name: "Saúde", Slug: "saude", Icon: "Heart"},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	rating := func(v float64) *float64 { return &v }
	money := func(v float64) *models.Money {
		m := models.NewMoneyFromFloat(v)
		return &m
	}

	products := []models.Product{
		{
			Title:            "iPhone 15 Pro Max 256GB - Titânio Natural",
			Description:      "iPhone 15 Pro Max com chip A17 Pro, câmera de 48MP e tela Super Retina XDR de 6.7 polegadas.",
			Price:            models.NewMoneyFromFloat(8999.00),
			OriginalPrice:    money(10499.00),
			Discount:         14,
			Installments:     12,
			Image:            "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=600&h=600&fit=crop", "https://images.unsplash.com/photo-1591337676887-a217a6970a8a?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.8),
			ReviewsCount:     1250,
			Sold:             5000,
			CategoryID:       categoryIDs["tecnologia"],
			Condition:        "novo",
			Brand:            "Apple",
			Stock:            15,
			SellerName:       "TechStore Oficial",
			SellerReputation: "MercadoLíder Platinum",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Marca", Value: "Apple"},
				{Name: "Modelo", Value: "iPhone 15 Pro Max"},
				{Name: "Armazenamento", Value: "256GB"},
			},
		},
		{
			Title:            "Smart TV Samsung 55\" 4K Crystal UHD",
			Description:      "Smart TV com resolução 4K, processador Crystal 4K e sistema Tizen.",
			Price:            models.NewMoneyFromFloat(2399.00),
			OriginalPrice:    money(3299.00),
			Discount:         27,
			Installments:     10,
			Image:            "https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.6),
			ReviewsCount:     890,
			Sold:             3200,
			CategoryID:       categoryIDs["tecnologia"],
			Condition:        "novo",
			Brand:            "Samsung",
			Stock:            25,
			SellerName:       "Samsung Store",
			SellerReputation: "MercadoLíder Gold",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Marca", Value: "Samsung"},
				{Name: "Tamanho", Value: "55 polegadas"},
			},
		},
		{
			Title:            "Notebook Gamer Acer Nitro 5 i5 RTX 3050",
			Description:      "Notebook gamer com Intel Core i5, placa de vídeo NVIDIA RTX 3050 e 16GB de RAM.",
			Price:            models.NewMoneyFromFloat(4299.00),
			OriginalPrice:    money(5499.00),
			Discount:         22,
			Installments:     12,
			Image:            "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.7),
			ReviewsCount:     456,
			Sold:             1800,
			CategoryID:       categoryIDs["tecnologia"],
			Condition:        "novo",
			Brand:            "Acer",
			Stock:            8,
			SellerName:       "Acer Brasil",
			SellerReputation: "MercadoLíder Platinum",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Processador", Value: "Intel Core i5-12450H"},
				{Name: "Placa de Vídeo", Value: "NVIDIA RTX 3050"},
			},
		},
		{
			Title:            "Tênis Nike Air Max 90 Masculino",
			Description:      "Tênis Nike Air Max 90 com amortecimento Air e design clássico.",
			Price:            models.NewMoneyFromFloat(599.90),
			OriginalPrice:    money(799.90),
			Discount:         25,
			Installments:     6,
			Image:            "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.9),
			ReviewsCount:     2100,
			Sold:             8500,
			CategoryID:       categoryIDs["moda"],
			Condition:        "novo",
			Brand:            "Nike",
			Stock:            50,
			SellerName:       "Nike Store",
			SellerReputation: "MercadoLíder Platinum",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Marca", Value: "Nike"},
				{Name: "Modelo", Value: "Air Max 90"},
			},
		},
		{
			Title:            "Geladeira Brastemp Frost Free 375L Inox",
			Description:      "Geladeira Frost Free com 375 litros, painel eletrônico e acabamento em inox.",
			Price:            models.NewMoneyFromFloat(3199.00),
			OriginalPrice:    money(4199.00),
			Discount:         24,
			Installments:     12,
			Image:            "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.5),
			ReviewsCount:     678,
			Sold:             2100,
			CategoryID:       categoryIDs["eletrodomesticos"],
			Condition:        "novo",
			Brand:            "Brastemp",
			Stock:            12,
			SellerName:       "Brastemp Oficial",
			SellerReputation: "MercadoLíder Gold",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Capacidade", Value: "375 litros"},
				{Name: "Tipo", Value: "Frost Free"},
			},
		},
		{
			Title:            "PlayStation 5 Standard Edition",
			Description:      "Console PlayStation 5 com SSD ultra-rápido, ray tracing e controle DualSense.",
			Price:            models.NewMoneyFromFloat(4299.00),
			OriginalPrice:    money(4999.00),
			Discount:         14,
			Installments:     12,
			Image:            "https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.9),
			ReviewsCount:     3200,
			Sold:             12000,
			CategoryID:       categoryIDs["brinquedos"],
			Condition:        "novo",
			Brand:            "Sony",
			Stock:            5,
			SellerName:       "PlayStation Store",
			SellerReputation: "MercadoLíder Platinum",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Marca", Value: "Sony"},
				{Name: "SSD", Value: "825GB"},
			},
		},
		{
			Title:            "Bicicleta Caloi Elite Carbon Racing",
			Description:      "Bicicleta de carbono para ciclismo profissional com grupo Shimano 105.",
			Price:            models.NewMoneyFromFloat(12999.00),
			OriginalPrice:    money(15999.00),
			Discount:         19,
			Installments:     12,
			Image:            "https://images.unsplash.com/photo-1485965120184-e220f721d03e?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1485965120184-e220f721d03e?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.7),
			ReviewsCount:     89,
			Sold:             250,
			CategoryID:       categoryIDs["esportes"],
			Condition:        "novo",
			Brand:            "Caloi",
			Stock:            3,
			SellerName:       "Caloi Store",
			SellerReputation: "MercadoLíder Gold",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Marca", Value: "Caloi"},
				{Name: "Material", Value: "Carbono"},
			},
		},
		{
			Title:            "Cafeteira Nespresso Vertuo Next",
			Description:      "Cafeteira automática com tecnologia Centrifusion para café expresso perfeito.",
			Price:            models.NewMoneyFromFloat(699.00),
			OriginalPrice:    money(899.00),
			Discount:         22,
			Installments:     6,
			Image:            "https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.6),
			ReviewsCount:     567,
			Sold:             2300,
			CategoryID:       categoryIDs["eletrodomesticos"],
			Condition:        "novo",
			Brand:            "Nespresso",
			Stock:            20,
			SellerName:       "Nespresso Brasil",
			SellerReputation: "MercadoLíder Gold",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Marca", Value: "Nespresso"},
				{Name: "Modelo", Value: "Vertuo Next"},
			},
		},
		{
			Title:            "Relógio Apple Watch Series 9 45mm GPS",
			Description:      "Apple Watch com chip S9, tela Retina always-on e monitoramento de saúde.",
			Price:            models.NewMoneyFromFloat(3999.00),
			OriginalPrice:    money(4599.00),
			Discount:         13,
			Installments:     12,
			Image:            "https://images.unsplash.com/photo-1546868871-7041f2a55e12?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1546868871-7041f2a55e12?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.8),
			ReviewsCount:     890,
			Sold:             4500,
			CategoryID:       categoryIDs["tecnologia"],
			Condition:        "novo",
			Brand:            "Apple",
			Stock:            18,
			SellerName:       "Apple Store",
			SellerReputation: "MercadoLíder Platinum",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Marca", Value: "Apple"},
				{Name: "Tamanho", Value: "45mm"},
			},
		},
		{
			Title:            "Ar Condicionado Split LG Dual Inverter 12000 BTUs",
			Description:      "Ar condicionado com tecnologia Dual Inverter, economia de energia e controle por app.",
			Price:            models.NewMoneyFromFloat(2199.00),
			OriginalPrice:    money(2899.00),
			Discount:         24,
			Installments:     12,
			Image:            "https://images.unsplash.com/photo-1631545806609-1d5c6e54d5f8?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1631545806609-1d5c6e54d5f8?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.7),
			ReviewsCount:     1200,
			Sold:             5600,
			CategoryID:       categoryIDs["eletrodomesticos"],
			Condition:        "novo",
			Brand:            "LG",
			Stock:            30,
			SellerName:       "LG Brasil",
			SellerReputation: "MercadoLíder Platinum",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Marca", Value: "LG"},
				{Name: "Capacidade", Value: "12000 BTUs"},
			},
		},
		{
			Title:            "Kindle Paperwhite 16GB 6.8\" Preto",
			Description:      "E-reader com tela de 6.8\", luz ajustável e bateria de longa duração.",
			Price:            models.NewMoneyFromFloat(549.00),
			OriginalPrice:    money(649.00),
			Discount:         15,
			Installments:     6,
			Image:            "https://images.unsplash.com/photo-1611532736597-de2d4265fba3?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1611532736597-de2d4265fba3?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.9),
			ReviewsCount:     3400,
			Sold:             15000,
			CategoryID:       categoryIDs["livros"],
			Condition:        "novo",
			Brand:            "Amazon",
			Stock:            45,
			SellerName:       "Amazon Brasil",
			SellerReputation: "MercadoLíder Platinum",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Marca", Value: "Amazon"},
				{Name: "Armazenamento", Value: "16GB"},
			},
		},
		{
			Title:            "Fone de Ouvido Sony WH-1000XM5 Bluetooth",
			Description:      "Fone over-ear com cancelamento de ruído líder do mercado e 30h de bateria.",
			Price:            models.NewMoneyFromFloat(2299.00),
			OriginalPrice:    money(2799.00),
			Discount:         18,
			Installments:     10,
			Image:            "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=400&h=400&fit=crop",
			Images:           models.StringArray{"https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?w=600&h=600&fit=crop"},
			FreeShipping:     true,
			Rating:           rating(4.8),
			ReviewsCount:     780,
			Sold:             3200,
			CategoryID:       categoryIDs["tecnologia"],
			Condition:        "novo",
			Brand:            "Sony",
			Stock:            22,
			SellerName:       "Sony Store",
			SellerReputation: "MercadoLíder Platinum",
			SellerLocation:   "São Paulo",
			Specs: models.SpecList{
				{Name: "Marca", Value: "Sony"},
				{Name: "Modelo", Value: "WH-1000XM5"},
			},
		},
	}

	for _, prod := range products {
		if prod.CategoryID == 0 {
			stdLog.Printf("Skip product %q: category missing", prod.Title)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("title = ?", prod.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %q: %v", prod.Title, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Title)
			}
		} else {
			stdLog.Printf("Product already exists: %s", prod.Title)
		}
	}

	slides := []models.HeroSlide{
		{
			Title:      "Ofertas da semana",
			Subtitle:   "Tecnologia com até 30% de desconto",
			Image:      "https://images.unsplash.com/photo-1498049794561-7780e7231661?auto=format&fit=crop&w=1920&q=80",
			ButtonText: "Ver ofertas",
			ButtonLink: "/products?sort=price_asc",
			Active:     true,
			SortOrder:  300,
		},
		{
			Title:      "Frete grátis",
			Subtitle:   "Em milhares de produtos selecionados",
			Image:      "https://images.unsplash.com/photo-1607082349566-187342175e2f?auto=format&fit=crop&w=1920&q=80",
			ButtonText: "Aproveitar",
			ButtonLink: "/products?free_shipping=true",
			Active:     true,
			SortOrder:  200,
		},
	}
	for _, slide := range slides {
		var existing models.HeroSlide
		if err := models.DB.Where("title = ?", slide.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&slide).Error; err != nil {
				stdLog.Printf("Failed to create hero slide %q: %v", slide.Title, err)
			} else {
				stdLog.Printf("Created hero slide: %s", slide.Title)
			}
		}
	}

	banners := []models.HomeBanner{
		{
			Title:     "Semana do consumidor",
			Image:     "https://images.unsplash.com/photo-1556740749-887f6717d7e4?auto=format&fit=crop&w=1600&q=80",
			Link:      "/products",
			Position:  "top",
			Active:    true,
			SortOrder: 100,
		},
		{
			Title:     "Casa e decoração",
			Image:     "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?auto=format&fit=crop&w=1600&q=80",
			Link:      "/products?category=casa-decoracao",
			Position:  "middle",
			Active:    true,
			SortOrder: 90,
		},
	}
	for _, banner := range banners {
		var existing models.HomeBanner
		if err := models.DB.Where("title = ?", banner.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&banner).Error; err != nil {
				stdLog.Printf("Failed to create banner %q: %v", banner.Title, err)
			} else {
				stdLog.Printf("Created banner: %s", banner.Title)
			}
		}
	}

	techID := categoryIDs["tecnologia"]
	carousels := []models.HomeCarousel{
		{
			Title:     "Mais vendidos",
			Subtitle:  "Os produtos que todo mundo está comprando",
			Kind:      constants.CarouselKindBestSellers,
			Limit:     10,
			Active:    true,
			SortOrder: 300,
		},
		{
			Title:      "Tecnologia em alta",
			Kind:       constants.CarouselKindCategory,
			CategoryID: &techID,
			Limit:      8,
			Active:     true,
			SortOrder:  200,
		},
	}
	for _, carousel := range carousels {
		var existing models.HomeCarousel
		if err := models.DB.Where("title = ?", carousel.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&carousel).Error; err != nil {
				stdLog.Printf("Failed to create carousel %q: %v", carousel.Title, err)
			} else {
				stdLog.Printf("Created carousel: %s", carousel.Title)
			}
		}
	}

	blogCategories := []models.BlogCategory{
		{Name: "Novidades", Slug: "novidades"},
		{Name: "Dicas de compra", Slug: "dicas-de-compra"},
	}
	for _, cat := range blogCategories {
		var existing models.BlogCategory
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create blog category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created blog category: %s", cat.Slug)
			}
		}
	}

	fmt.Println("\nSeed completed.")
	fmt.Println("Summary:")
	fmt.Println("- 12 categories")
	fmt.Println("- 12 products")
	fmt.Println("- 2 hero slides, 2 banners, 2 carousels")
	fmt.Println("- 2 blog categories")
	fmt.Println("- Default display settings")
}
