package main

import (
	"optika/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.CartItemModel{},
		model.OrderModel{},
		model.OrderItemModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
