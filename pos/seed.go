package pos

import (
	"log"

	"github.com/nanthakishoreraja/smsystems/models"
	"github.com/nanthakishoreraja/smsystems/store"
)

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "cat-cctv", Name: "CCTV Cameras"},
		{ID: "cat-dvr", Name: "DVR"},
		{ID: "cat-monitors", Name: "Monitors"},
		{ID: "cat-hdmi", Name: "HDMI Cables"},
		{ID: "cat-connectors", Name: "Connectors"},
	}
}

func seedProducts() []models.Product {
	sample := []models.Product{
		{Name: "Dome Camera 2MP", CategoryID: "cat-cctv", Price: 1499.00, Image: "https://images.unsplash.com/photo-1587476482538-517f6a60f1f0?q=80&w=600"},
		{Name: "Bullet Camera 5MP", CategoryID: "cat-cctv", Price: 2499.00, Image: "https://images.unsplash.com/photo-1564257631407-0e3ca97b7d2a?q=80&w=600"},
		{Name: "DVR 4-Channel", CategoryID: "cat-dvr", Price: 3999.00, Image: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?q=80&w=600"},
		{Name: "DVR 8-Channel", CategoryID: "cat-dvr", Price: 5499.00, Image: "https://images.unsplash.com/photo-1518779578993-ec3579fee39f?q=80&w=600"},
		{Name: "LED Monitor 22\"", CategoryID: "cat-monitors", Price: 7999.00, Image: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?q=80&w=600"},
		{Name: "HDMI Cable 2m", CategoryID: "cat-hdmi", Price: 299.00, Image: "https://images.unsplash.com/photo-1596991924191-53debd31a8a8?q=80&w=600"},
		{Name: "BNC Connector", CategoryID: "cat-connectors", Price: 49.00, Image: "https://images.unsplash.com/photo-1563986768711-b3bde3dc821e?q=80&w=600"},
	}
	for i := range sample {
		sample[i].ID = newID()
	}
	return sample
}

// SeedIfEmpty loads the demo catalog when both product and category lists
// are empty, so a fresh install has something to sell.
func (s *Session) SeedIfEmpty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products) > 0 && len(s.categories) > 0 {
		return
	}
	s.categories = seedCategories()
	s.products = seedProducts()
	s.cart = []models.CartLine{}
	s.persistCategories()
	s.persistProducts()
	s.persistCart()
	s.writeKey(store.KeySales, []models.Order{})
}

// ResetSeed wipes every stored key and reloads the demo catalog. The undo
// history and customer fields go with it.
func (s *Session) ResetSeed() {
	s.mu.Lock()
	s.products = nil
	s.categories = nil
	s.cart = nil
	s.customer = models.Customer{}
	s.history = nil
	for _, key := range []string{store.KeyProducts, store.KeyCategories, store.KeyCart, store.KeySales} {
		if err := s.store.Remove(key); err != nil {
			log.Printf("❌ Failed to remove %s: %v", key, err)
		}
	}
	s.mu.Unlock()

	s.SeedIfEmpty()
}
