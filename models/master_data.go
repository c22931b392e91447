package models

// Static master data served by the /master endpoints. Kept in insertion
// order so the API returns stable lists.

var BikeBrands = []string{
	"Royal Enfield",
	"Harley-Davidson",
	"Triumph",
	"KTM",
	"BMW",
	"Ducati",
	"Kawasaki",
	"Honda",
	"Yamaha",
	"Suzuki",
	"Bajaj",
	"TVS",
	"Hero",
	"Jawa",
	"Yezdi",
	"Benelli",
	"Aprilia",
	"Husqvarna",
	"Other",
}

var BikeBrandModels = map[string][]string{
	"Royal Enfield": {
		"Classic 350", "Classic 500", "Bullet 350", "Meteor 350",
		"Hunter 350", "Scram 440", "Himalayan", "Interceptor 650",
		"Continental GT 650", "Super Meteor 650", "Shotgun 650",
		"Guerrilla 450",
	},
	"Harley-Davidson": {
		"X440", "Iron 883", "Forty-Eight", "Street 750", "Fat Boy",
		"Sportster S", "Nightster", "Pan America",
	},
	"Triumph": {
		"Speed T4", "Speed 400", "Scrambler 400 X", "Trident 660",
		"Tiger 900", "Street Triple", "Speed Triple", "Bonneville T100",
		"Bonneville T120", "Rocket 3",
	},
	"KTM": {
		"Duke 125", "Duke 200", "Duke 250", "Duke 390", "RC 125",
		"RC 200", "RC 390", "Adventure 250", "Adventure 390",
	},
	"BMW": {
		"G 310 R", "G 310 GS", "S 1000 RR", "R 1250 GS", "F 900 R",
	},
	"Ducati": {
		"Panigale V2", "Panigale V4", "Monster", "Scrambler", "Multistrada",
	},
	"Kawasaki": {
		"Ninja 300", "Ninja 400", "Ninja 650", "Ninja ZX-10R", "Z650",
		"Z900", "Versys 650", "Vulcan S",
	},
	"Honda": {
		"CB300R", "CB350", "CB350RS", "CB500X", "Africa Twin",
		"Gold Wing", "Hornet 2.0", "Shine", "Unicorn", "SP 125", "Activa",
	},
	"Yamaha": {
		"R15 V4", "R3", "MT-15", "MT-03", "FZ-S", "FZX", "Aerox 155",
		"Fascino", "Ray ZR",
	},
	"Suzuki": {
		"Gixxer SF", "Gixxer 250", "V-Strom 250", "Hayabusa",
		"Access 125", "Burgman",
	},
	"Bajaj": {
		"Pulsar NS200", "Pulsar RS200", "Pulsar N250", "Dominar 250",
		"Dominar 400", "Avenger", "Chetak",
	},
	"TVS": {
		"Apache RTR 160", "Apache RTR 200", "Apache RR 310", "Ronin",
		"Raider", "Jupiter", "NTorq", "iQube",
	},
	"Hero": {
		"Xtreme 160R", "XPulse 200", "Karizma XMR", "Splendor",
		"Passion", "Glamour", "Destini",
	},
	"Jawa": {
		"Jawa 350", "42", "Perak",
	},
	"Yezdi": {
		"Roadster", "Scrambler", "Adventure",
	},
	"Benelli": {
		"Imperiale 400", "Leoncino 500", "TRK 502",
	},
	"Husqvarna": {
		"Svartpilen 250", "Vitpilen 250", "Svartpilen 401",
	},
	"Aprilia": {
		"RS 457", "Tuono 457", "SXR 160",
	},
	"Other": {"Other"},
}

var ExpenseTypes = []string{
	"Fuel",
	"Service",
	"Insurance",
	"Accessories",
	"Spare Parts",
	"Tyres",
	"Battery",
	"Toll",
	"Parking",
	"Washing",
	"Other",
}

var DocumentTypes = []string{
	"RC Certificate",
	"Insurance Policy",
	"PUC Certificate",
	"Driver's License",
	"Service Records",
	"Warranty Documents",
	"Other",
}

// BikeModels returns the flat list of every known model across brands,
// in brand order.
func BikeModels() []string {
	models := make([]string, 0, 128)
	seen := make(map[string]bool)
	for _, brand := range BikeBrands {
		for _, model := range BikeBrandModels[brand] {
			if seen[model] {
				continue
			}
			seen[model] = true
			models = append(models, model)
		}
	}
	return models
}

// IsValidExpenseType reports whether t is a known expense category.
func IsValidExpenseType(t string) bool {
	for _, known := range ExpenseTypes {
		if known == t {
			return true
		}
	}
	return false
}

// IsValidDocumentType reports whether t is a known document type.
func IsValidDocumentType(t string) bool {
	for _, known := range DocumentTypes {
		if known == t {
			return true
		}
	}
	return false
}
