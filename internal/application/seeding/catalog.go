package seeding

// demoCategory una categoría demo con sus 15 productos.
type demoCategory struct {
	Name        string
	Prefix      string
	Description string
	Products    []string
}

// demoCatalog catálogo de demostración: 5 categorías × 15 productos.
var demoCatalog = []demoCategory{
	{
		Name:        "Electronics",
		Prefix:      "ELEC",
		Description: "Gadgets, accessories and consumer electronics",
		Products: []string{
			"Wireless Mouse", "Mechanical Keyboard", "USB-C Hub", "Bluetooth Speaker",
			"Noise Cancelling Headphones", "Webcam 1080p", "Portable SSD 1TB",
			"Smart Plug", "Wireless Charger", "HDMI Cable 2m", "Laptop Stand",
			"Gaming Controller", "LED Desk Lamp", "Power Bank 20000mAh", "Smartwatch Band",
		},
	},
	{
		Name:        "Home & Kitchen",
		Prefix:      "HOME",
		Description: "Everyday items for home and kitchen",
		Products: []string{
			"French Press", "Chef Knife 8in", "Cutting Board Bamboo", "Cast Iron Skillet",
			"Electric Kettle", "Spice Rack", "Mixing Bowl Set", "Silicone Spatula Set",
			"Glass Food Containers", "Dish Drying Rack", "Kitchen Scale", "Vacuum Flask",
			"Ceramic Dinner Set", "Non-stick Frying Pan", "Salad Spinner",
		},
	},
	{
		Name:        "Sports & Outdoors",
		Prefix:      "SPRT",
		Description: "Gear for training, camping and outdoor life",
		Products: []string{
			"Yoga Mat", "Resistance Bands Set", "Camping Tent 2P", "Trekking Poles",
			"Insulated Water Bottle", "Running Belt", "Jump Rope", "Kettlebell 12kg",
			"Sleeping Bag", "Headlamp Rechargeable", "Foam Roller", "Climbing Carabiner",
			"Cycling Gloves", "Swim Goggles", "Hiking Backpack 40L",
		},
	},
	{
		Name:        "Toys & Games",
		Prefix:      "TOYS",
		Description: "Toys, board games and puzzles for all ages",
		Products: []string{
			"Building Blocks 500pc", "Puzzle 1000pc", "Remote Control Car", "Plush Bear Large",
			"Board Game Strategy", "Play-Doh Set", "Action Figure Robot", "Card Game Family",
			"Wooden Train Set", "Kite Rainbow", "Marble Run", "Dollhouse Furniture",
			"Science Kit Kids", "Magic Trick Set", "Foam Dart Blaster",
		},
	},
	{
		Name:        "Office Supplies",
		Prefix:      "OFFC",
		Description: "Stationery and office essentials",
		Products: []string{
			"Gel Pens 12 Pack", "Sticky Notes Cube", "Desk Organizer", "Stapler Heavy Duty",
			"Notebook A5 Dotted", "Whiteboard Markers", "Paper Shredder", "Ergonomic Mouse Pad",
			"File Folders Letter", "Desk Calendar", "Highlighters Pastel", "Binder Clips Assorted",
			"Label Maker", "Letter Tray Stackable", "Correction Tape",
		},
	},
}
