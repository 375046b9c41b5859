package store

import "supplysight/internal/models"

// SeedWarehouses is the static warehouse set loaded at startup.
func SeedWarehouses() []models.Warehouse {
	return []models.Warehouse{
		{Code: "BLR-A", Name: "Bangalore A", City: "Bangalore", Country: "India"},
		{Code: "PNQ-C", Name: "Pune C", City: "Pune", Country: "India"},
		{Code: "DEL-B", Name: "Delhi B", City: "Delhi", Country: "India"},
	}
}

// SeedProducts is the sample inventory data loaded at startup.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1005", Name: "Aluminum Spacer", SKU: "SPC-AL-10", Warehouse: "BLR-A", Stock: 60, Demand: 40},
		{ID: "P-1006", Name: "Spring Washer", SKU: "SPR-WSR-12", Warehouse: "PNQ-C", Stock: 90, Demand: 60},
		{ID: "P-1007", Name: "Lock Nut", SKU: "LCK-NUT-10", Warehouse: "DEL-B", Stock: 30, Demand: 50},
		{ID: "P-1008", Name: "Flat Washer", SKU: "FLT-WSR-08", Warehouse: "BLR-A", Stock: 120, Demand: 100},
		{ID: "P-1009", Name: "Hex Nut", SKU: "HEX-NUT-12", Warehouse: "PNQ-C", Stock: 70, Demand: 90},
		{ID: "P-1010", Name: "Threaded Rod", SKU: "THRD-ROD-16", Warehouse: "DEL-B", Stock: 40, Demand: 30},
		{ID: "P-1011", Name: "Wing Nut", SKU: "WNG-NUT-08", Warehouse: "BLR-A", Stock: 55, Demand: 45},
		{ID: "P-1012", Name: "Split Pin", SKU: "SPLT-PIN-06", Warehouse: "PNQ-C", Stock: 100, Demand: 80},
		{ID: "P-1013", Name: "Cotter Pin", SKU: "CTTR-PIN-04", Warehouse: "DEL-B", Stock: 20, Demand: 25},
		{ID: "P-1014", Name: "Machine Screw", SKU: "MCH-SCR-10", Warehouse: "BLR-A", Stock: 75, Demand: 60},
		{ID: "P-1015", Name: "Cap Nut", SKU: "CAP-NUT-12", Warehouse: "PNQ-C", Stock: 35, Demand: 40},
		{ID: "P-1016", Name: "Square Nut", SKU: "SQR-NUT-10", Warehouse: "DEL-B", Stock: 65, Demand: 70},
		{ID: "P-1017", Name: "T-Nut", SKU: "T-NUT-08", Warehouse: "BLR-A", Stock: 85, Demand: 90},
		{ID: "P-1018", Name: "Dome Nut", SKU: "DOME-NUT-10", Warehouse: "PNQ-C", Stock: 45, Demand: 50},
		{ID: "P-1019", Name: "Eye Bolt", SKU: "EYE-BOLT-12", Warehouse: "DEL-B", Stock: 25, Demand: 30},
	}
}
