package catalog

import "testing"

func TestSeededCatalogServices(t *testing.T) {
	c := NewSeededCatalog()

	services := c.GetAll()
	if len(services) != 12 {
		t.Fatalf("got %d services, want 12", len(services))
	}

	svc, err := c.GetByName("House Cleaning")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if svc.BasePrice != 35 || svc.Category != "Home" {
		t.Errorf("House Cleaning = %+v", svc)
	}

	if _, err := c.GetByName("Dog Grooming"); err == nil {
		t.Fatal("expected error for unknown service name")
	}
	if _, err := c.GetByID(99); err == nil {
		t.Fatal("expected error for unknown service ID")
	}
}

func TestSeededCatalogHelpers(t *testing.T) {
	helpers := NewSeededCatalog().Helpers()

	h, err := helpers.GetByID(1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if h.Name != "Sarah Johnson" || !h.HasSkill("Tech Support") {
		t.Errorf("helper 1 = %+v", h)
	}

	if _, err := helpers.GetByID(99); err == nil {
		t.Fatal("expected error for unknown helper ID")
	}
}

func TestGetAllReturnsCopies(t *testing.T) {
	c := NewSeededCatalog()

	first := c.GetAll()
	first[0].Name = "mutated"

	second := c.GetAll()
	if second[0].Name == "mutated" {
		t.Fatal("catalog leaked internal slice")
	}
}
