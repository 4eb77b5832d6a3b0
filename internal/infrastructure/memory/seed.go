package memory

import "github.com/jhoicas/inventory-dashboard/internal/domain/entity"

// SeedWarehouses bodegas cargadas al arrancar.
func SeedWarehouses() []entity.Warehouse {
	return []entity.Warehouse{
		{Code: "LAX-A", Name: "Los Angeles A", City: "Los Angeles", Country: "USA"},
		{Code: "NYC-B", Name: "New York B", City: "New York", Country: "USA"},
		{Code: "CHI-C", Name: "Chicago C", City: "Chicago", Country: "USA"},
		{Code: "BLR-A", Name: "Bangalore A", City: "Bangalore", Country: "India"},
		{Code: "PNQ-C", Name: "Pune C", City: "Pune", Country: "India"},
		{Code: "DEL-B", Name: "Delhi B", City: "New Delhi", Country: "India"},
	}
}

// SeedProducts productos cargados al arrancar.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1005", Name: "Spring Pin", SKU: "SPP-04-150", Warehouse: "BLR-A", Stock: 300, Demand: 250},
		{ID: "P-1006", Name: "Rubber Gasket", SKU: "GSK-10-300", Warehouse: "DEL-B", Stock: 150, Demand: 200},
		{ID: "P-1007", Name: "Locknut M6", SKU: "LKN-06-400", Warehouse: "PNQ-C", Stock: 120, Demand: 120},
		{ID: "P-1008", Name: "Titanium Screw", SKU: "SCR-03-050", Warehouse: "BLR-A", Stock: 90, Demand: 40},
		{ID: "P-1009", Name: "Aluminum Plate", SKU: "PLT-AL-101", Warehouse: "DEL-B", Stock: 45, Demand: 95},
		{ID: "P-1010", Name: "Copper Wire 1m", SKU: "WIR-CU-001", Warehouse: "PNQ-C", Stock: 500, Demand: 550},
		{ID: "P-1011", Name: "O-Ring Seal", SKU: "ORS-15-600", Warehouse: "BLR-A", Stock: 800, Demand: 650},
		{ID: "P-1012", Name: "Ceramic Insulator", SKU: "INS-CE-020", Warehouse: "DEL-B", Stock: 70, Demand: 70},
	}
}
