package db

import "shoppingpaglu/internal/domain/model"

// 初期カタログ（環境が変わっても同じ内容になるよう固定）
var CatalogSeed = []model.Product{
	{ID: "p1", Name: "Classic Tee", Price: 499, Description: "A comfortable and stylish tee for everyday wear.", ImageURL: "https://placehold.co/600x400/6366f1/ffffff?text=Classic+Tee"},
	{ID: "p2", Name: "Denim Jeans", Price: 1999, Description: "Perfectly fitted denim jeans for any occasion.", ImageURL: "https://placehold.co/600x400/3b82f6/ffffff?text=Denim+Jeans"},
	{ID: "p3", Name: "Leather Jacket", Price: 4999, Description: "A timeless leather jacket that adds an edge to your look.", ImageURL: "https://placehold.co/600x400/1f2937/ffffff?text=Leather+Jacket"},
	{ID: "p4", Name: "Running Sneakers", Price: 2499, Description: "Lightweight and supportive sneakers for your daily run.", ImageURL: "https://placehold.co/600x400/10b981/ffffff?text=Sneakers"},
	{ID: "p5", Name: "Stylish Watch", Price: 7999, Description: "An elegant watch to complete your sophisticated look.", ImageURL: "https://placehold.co/600x400/8b5cf6/ffffff?text=Watch"},
	{ID: "p6", Name: "Wool Scarf", Price: 799, Description: "A warm and cozy scarf for chilly days.", ImageURL: "https://placehold.co/600x400/ef4444/ffffff?text=Scarf"},
	{ID: "p7", Name: "Canvas Backpack", Price: 1499, Description: "A durable and spacious backpack for all your essentials.", ImageURL: "https://placehold.co/600x400/f97316/ffffff?text=Backpack"},
	{ID: "p8", Name: "Sunglasses", Price: 999, Description: "Protect your eyes in style with these modern sunglasses.", ImageURL: "https://placehold.co/600x400/f59e0b/ffffff?text=Sunglasses"},
}
