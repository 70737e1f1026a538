package matching

import (
	"math"
	"reflect"
	"testing"

	"snabbit/database/catalog"
	"snabbit/models"
)

func fullRange() models.PriceRange {
	return models.PriceRange{Min: 0, Max: math.MaxFloat64}
}

func serviceNames(services []models.Service) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.Name
	}
	return out
}

func TestFilterServicesNoFiltersReturnsAll(t *testing.T) {
	services := catalog.NewSeededCatalog().GetAll()

	got := FilterServices(services, "", fullRange(), false)
	if !reflect.DeepEqual(got, services) {
		t.Fatalf("unfiltered result differs from catalog: %v", serviceNames(got))
	}
}

func TestFilterServicesSearchClean(t *testing.T) {
	services := catalog.NewSeededCatalog().GetAll()

	got := FilterServices(services, "clean", models.PriceRange{Min: 20, Max: 100}, false)
	if want := []string{"House Cleaning"}; !reflect.DeepEqual(serviceNames(got), want) {
		t.Fatalf("FilterServices(clean) = %v, want %v", serviceNames(got), want)
	}
}

func TestFilterServicesMatchesDescription(t *testing.T) {
	services := catalog.NewSeededCatalog().GetAll()

	// "IKEA" appears only in the Furniture Assembly description.
	got := FilterServices(services, "ikea", fullRange(), false)
	if want := []string{"Furniture Assembly"}; !reflect.DeepEqual(serviceNames(got), want) {
		t.Fatalf("FilterServices(ikea) = %v, want %v", serviceNames(got), want)
	}
}

func TestFilterServicesPriceRangeInclusive(t *testing.T) {
	services := []models.Service{
		{Name: "low", BasePrice: 20},
		{Name: "mid", BasePrice: 50},
		{Name: "high", BasePrice: 80},
	}

	got := FilterServices(services, "", models.PriceRange{Min: 20, Max: 50}, false)
	if want := []string{"low", "mid"}; !reflect.DeepEqual(serviceNames(got), want) {
		t.Fatalf("price range filter = %v, want %v", serviceNames(got), want)
	}
}

func TestFilterServicesEmergencyOnly(t *testing.T) {
	services := catalog.NewSeededCatalog().GetAll()

	got := FilterServices(services, "", fullRange(), true)
	if len(got) == 0 {
		t.Fatal("expected emergency-eligible services")
	}
	for _, svc := range got {
		if !svc.EmergencyEligible {
			t.Errorf("service %q is not emergency eligible", svc.Name)
		}
	}
}

func TestFilterServicesPreservesOrder(t *testing.T) {
	services := catalog.NewSeededCatalog().GetAll()

	got := FilterServices(services, "", fullRange(), true)
	lastID := 0
	for _, svc := range got {
		if svc.ID <= lastID {
			t.Fatalf("catalog order not preserved: %v", serviceNames(got))
		}
		lastID = svc.ID
	}
}
