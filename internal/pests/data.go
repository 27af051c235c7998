package pests

import "github.com/aumai/kisanmitra/internal/models"

// catalogueData is the built-in pest table covering common Indian field
// pests: insects, fungal and bacterial diseases, mites, and nematodes.
// Order here is the catalogue-definition order that Identify and ByCrop
// preserve, so new entries go at the end.
var catalogueData = []models.Pest{
	{
		Name:          "Brown Plant Hopper",
		AffectedCrops: []string{"Rice"},
		Symptoms:      []string{"yellowing", "wilting", "hopperburn", "lodging"},
		Treatment:     []string{"Apply imidacloprid 17.8 SL @ 125 ml/ha", "Drain field for 3-4 days", "Apply BPMC 50 EC"},
		Prevention:    []string{"Use resistant varieties", "Avoid excessive nitrogen", "Maintain field drainage"},
	},
	{
		Name:          "Aphids",
		AffectedCrops: []string{"Wheat", "Mustard", "Cotton", "Okra", "Groundnut"},
		Symptoms:      []string{"curling leaves", "yellowing", "sticky honeydew", "stunted growth", "sooty mould"},
		Treatment:     []string{"Spray dimethoate 30 EC @ 500 ml/ha", "Apply imidacloprid 17.8 SL @ 75 ml/ha", "Neem oil spray 5%"},
		Prevention:    []string{"Encourage natural predators (ladybird beetles)", "Avoid dense planting", "Remove weeds"},
	},
	{
		Name:          "Stem Borer",
		AffectedCrops: []string{"Rice", "Maize", "Sugarcane", "Sorghum"},
		Symptoms:      []string{"dead heart", "white ear", "borer entry holes", "frass", "stem tunnelling"},
		Treatment:     []string{"Apply carbofuran 3G @ 20 kg/ha", "Release Trichogramma parasitoids", "Chlorpyrifos 20 EC"},
		Prevention:    []string{"Use light traps", "Destroy stubbles after harvest", "Balanced nitrogen application"},
	},
	{
		Name:          "Whitefly",
		AffectedCrops: []string{"Cotton", "Tomato", "Brinjal", "Chilli", "Cucurbits"},
		Symptoms:      []string{"yellowing", "silver streaks", "sticky leaves", "sooty mould", "virus transmission"},
		Treatment:     []string{"Thiamethoxam 25 WG @ 100 g/ha", "Yellow sticky traps", "Neem seed kernel extract 5%"},
		Prevention:    []string{"Intercropping with marigold", "Remove infected plants", "Avoid over-irrigation"},
	},
	{
		Name:          "Thrips",
		AffectedCrops: []string{"Chilli", "Cotton", "Onion", "Groundnut"},
		Symptoms:      []string{"silver streaks on leaves", "upward curling", "scarring", "bronzing"},
		Treatment:     []string{"Spinosad 45 SC @ 100 ml/ha", "Fipronil 5 SC @ 600 ml/ha"},
		Prevention:    []string{"Blue sticky traps", "Avoid planting near maize", "Reflective mulch"},
	},
	{
		Name:          "Red Spider Mite",
		AffectedCrops: []string{"Cotton", "Brinjal", "Okra", "Beans", "Maize"},
		Symptoms:      []string{"bronze speckling", "webbing", "leaf drop", "yellowing"},
		Treatment:     []string{"Dicofol 18.5 EC @ 1.5 l/ha", "Sulphur 80 WP @ 2.5 kg/ha", "Abamectin 1.8 EC"},
		Prevention:    []string{"Overhead irrigation reduces mites", "Avoid dusty conditions", "Predatory mites"},
	},
	{
		Name:          "Mealy Bug",
		AffectedCrops: []string{"Cotton", "Grapes", "Pomegranate", "Papaya"},
		Symptoms:      []string{"white cottony masses", "yellowing", "stunted growth", "sooty mould"},
		Treatment:     []string{"Profenofos 50 EC @ 1 l/ha", "Spray ethion 50 EC", "Release Cryptolaemus predators"},
		Prevention:    []string{"Destroy crop debris", "Ant management", "Avoid excess nitrogen"},
	},
	{
		Name:          "Helicoverpa (Bollworm)",
		AffectedCrops: []string{"Cotton", "Tomato", "Chickpea", "Pigeonpea", "Maize"},
		Symptoms:      []string{"bored bolls/pods/fruit", "circular entry holes", "larval frass", "premature boll/pod drop"},
		Treatment:     []string{"Spinosad 45 SC @ 150 ml/ha", "Bt spray 750 g/ha", "Emamectin benzoate 5 SG"},
		Prevention:    []string{"Pheromone traps (5/ha)", "Use Bt cotton varieties", "Intercrop with sorghum"},
	},
	{
		Name:          "Cutworm",
		AffectedCrops: []string{"Wheat", "Maize", "Vegetables", "Cotton"},
		Symptoms:      []string{"cut seedlings at ground level", "wilting", "night feeding"},
		Treatment:     []string{"Chlorpyrifos 20 EC @ 2.5 l/ha soil drench", "Poison bait (bran + chlorpyrifos)"},
		Prevention:    []string{"Deep ploughing in summer", "Remove weeds", "Flood irrigation before planting"},
	},
	{
		Name:          "Leaf Folder",
		AffectedCrops: []string{"Rice"},
		Symptoms:      []string{"longitudinal folded leaves", "white leaf streaks", "feeding damage"},
		Treatment:     []string{"Chlorpyrifos 20 EC @ 1.5 l/ha", "Monocrotophos 36 WSC @ 750 ml/ha"},
		Prevention:    []string{"Balanced fertilisation", "Avoid dense planting", "Light traps"},
	},
	{
		Name:          "Jassid (Leafhopper)",
		AffectedCrops: []string{"Cotton", "Groundnut", "Okra", "Brinjal"},
		Symptoms:      []string{"yellowing from leaf margins", "leaf curl downward", "burning appearance"},
		Treatment:     []string{"Imidacloprid 70 WG @ 35 g/ha", "Thiamethoxam 25 WG @ 80 g/ha"},
		Prevention:    []string{"Hairy-leaved varieties", "Avoid close planting", "Yellow sticky traps"},
	},
	{
		Name:          "Powdery Mildew",
		AffectedCrops: []string{"Wheat", "Grapes", "Cucurbits", "Pea", "Mustard"},
		Symptoms:      []string{"white powdery patches", "yellowing below", "premature leaf drop", "stunted growth"},
		Treatment:     []string{"Sulphur 80 WP @ 2.5 kg/ha", "Propiconazole 25 EC @ 500 ml/ha", "Hexaconazole 5 EC"},
		Prevention:    []string{"Resistant varieties", "Avoid overhead irrigation", "Proper plant spacing"},
	},
	{
		Name:          "Blast (Rice Blast)",
		AffectedCrops: []string{"Rice"},
		Symptoms:      []string{"diamond-shaped lesions", "eye-shaped spots", "neck rot", "panicle blast"},
		Treatment:     []string{"Tricyclazole 75 WP @ 300 g/ha", "Isoprothiolane 40 EC @ 750 ml/ha"},
		Prevention:    []string{"Balanced nitrogen", "Resistant varieties", "Silicon application"},
	},
	{
		Name:          "Late Blight",
		AffectedCrops: []string{"Potato", "Tomato"},
		Symptoms:      []string{"water-soaked lesions", "white mouldy growth", "rapid wilting", "brown rotting tubers"},
		Treatment:     []string{"Metalaxyl + Mancozeb 72 WP @ 2 kg/ha", "Cymoxanil + Mancozeb"},
		Prevention:    []string{"Certified disease-free seed", "Avoid over-irrigation", "Copper fungicides preventively"},
	},
	{
		Name:          "Yellow Rust",
		AffectedCrops: []string{"Wheat", "Barley"},
		Symptoms:      []string{"yellow stripe pustules", "yellow powder on leaves", "stunted growth"},
		Treatment:     []string{"Propiconazole 25 EC @ 500 ml/ha", "Tebuconazole 250 EW @ 750 ml/ha"},
		Prevention:    []string{"Resistant varieties", "Early sowing", "Balanced nutrition"},
	},
	{
		Name:          "Leaf Blight",
		AffectedCrops: []string{"Rice", "Maize", "Wheat"},
		Symptoms:      []string{"water-soaked lesions turning brown", "leaf blighting", "straw-coloured patches"},
		Treatment:     []string{"Validamycin 3 L @ 2 l/ha", "Copper oxychloride 50 WP @ 3 kg/ha"},
		Prevention:    []string{"Balanced NPK", "Proper drainage", "Resistant varieties"},
	},
	{
		Name:          "Fruit Borer",
		AffectedCrops: []string{"Brinjal", "Tomato", "Chilli"},
		Symptoms:      []string{"bored fruits", "dropping fruits", "larval frass at entry"},
		Treatment:     []string{"Emamectin benzoate 5 SG @ 220 g/ha", "Spinosad 45 SC @ 100 ml/ha"},
		Prevention:    []string{"Pheromone traps", "Remove damaged fruits", "Inter-cropping"},
	},
	{
		Name:          "Nematodes (Root Knot)",
		AffectedCrops: []string{"Tomato", "Brinjal", "Groundnut", "Banana", "Cucurbits"},
		Symptoms:      []string{"root galls/knots", "stunting", "yellowing", "poor yield", "wilting"},
		Treatment:     []string{"Carbofuran 3G @ 1 kg ai/ha", "Phorate 10G @ 1 kg ai/ha", "Biocontrol with Paecilomyces"},
		Prevention:    []string{"Crop rotation with cereals", "Marigold inter-cropping", "Soil solarisation"},
	},
	{
		Name:          "Downy Mildew",
		AffectedCrops: []string{"Maize", "Pearl Millet", "Grapes", "Cucurbits"},
		Symptoms:      []string{"downy white growth on underside", "chlorotic patches", "downcurled leaves"},
		Treatment:     []string{"Metalaxyl 8% + Mancozeb 64% WP @ 2.5 kg/ha", "Fosetyl-Al 80 WP"},
		Prevention:    []string{"Seed treatment with metalaxyl", "Avoid overhead irrigation", "Resistant varieties"},
	},
	{
		Name:          "Bacterial Wilt",
		AffectedCrops: []string{"Tomato", "Brinjal", "Pepper", "Potato"},
		Symptoms:      []string{"sudden wilting", "vascular browning", "bacterial ooze in water test"},
		Treatment:     []string{"No effective chemical cure; remove and destroy infected plants", "Streptomycin sulphate as preventive"},
		Prevention:    []string{"Resistant varieties", "Soil sterilisation", "Crop rotation", "Avoid wounding roots"},
	},
	{
		Name:          "Caterpillar (Army Worm)",
		AffectedCrops: []string{"Maize", "Sorghum", "Rice", "Wheat"},
		Symptoms:      []string{"ragged leaf feeding", "defoliation", "windowpane feeding", "frass"},
		Treatment:     []string{"Chlorpyrifos 20 EC @ 2.5 l/ha", "Emamectin benzoate 5 SG", "Spinetoram 11.7 SC"},
		Prevention:    []string{"Light traps", "Birds on field", "Early planting"},
	},
	{
		Name:          "Fall Armyworm",
		AffectedCrops: []string{"Maize", "Sorghum", "Cotton", "Rice"},
		Symptoms:      []string{"ragged feeding in whorl", "frass like sawdust", "irregular holes in leaves"},
		Treatment:     []string{"Emamectin benzoate 5 SG @ 220 g/ha", "Spinetoram 11.7 SC @ 375 ml/ha", "Bt spray"},
		Prevention:    []string{"Intercrop with Napier grass", "Pheromone traps", "Avoid late planting"},
	},
	{
		Name:          "Diamond Back Moth",
		AffectedCrops: []string{"Cabbage", "Cauliflower", "Mustard", "Radish"},
		Symptoms:      []string{"window pane feeding", "shot holes", "skeletonised leaves", "greenish larvae on underside"},
		Treatment:     []string{"Spinosad 45 SC @ 150 ml/ha", "Emamectin benzoate 5 SG @ 200 g/ha", "Chlorfenapyr 10 SC"},
		Prevention:    []string{"Bt crops", "Pheromone traps", "Natural predators"},
	},
	{
		Name:          "Pod Borer (Gram)",
		AffectedCrops: []string{"Chickpea", "Pigeonpea", "Cowpea"},
		Symptoms:      []string{"bored pods", "excreta near entry holes", "damaged seeds"},
		Treatment:     []string{"Endosulfan 35 EC @ 1.5 l/ha", "Profenofos 50 EC @ 1 l/ha"},
		Prevention:    []string{"Intercrop chickpea with coriander", "Pheromone traps", "Early sowing"},
	},
	{
		Name:          "Rust (Groundnut)",
		AffectedCrops: []string{"Groundnut"},
		Symptoms:      []string{"small orange-brown pustules", "yellowing", "defoliation"},
		Treatment:     []string{"Mancozeb 75 WP @ 2.5 kg/ha", "Chlorothalonil 75 WP @ 1.5 kg/ha"},
		Prevention:    []string{"Resistant varieties", "Seed treatment with thiram", "Early sowing"},
	},
	{
		Name:          "Collar Rot",
		AffectedCrops: []string{"Groundnut", "Chickpea", "Sunflower"},
		Symptoms:      []string{"rotting at collar region", "dark brown lesion", "plant collapse"},
		Treatment:     []string{"Soil drench with carbendazim 0.1%", "Thiram seed treatment"},
		Prevention:    []string{"Seed treatment", "Avoid water-logged conditions", "Crop rotation"},
	},
	{
		Name:          "White Grub",
		AffectedCrops: []string{"Sugarcane", "Groundnut", "Maize", "Potato"},
		Symptoms:      []string{"plants pulled out easily", "severed roots", "yellowing", "wilting"},
		Treatment:     []string{"Chlorpyrifos 20 EC soil incorporation", "Imidacloprid 70 WS seed treatment"},
		Prevention:    []string{"Summer ploughing to expose grubs", "Light traps for adults", "Neem cake application"},
	},
	{
		Name:          "Scales",
		AffectedCrops: []string{"Mango", "Citrus", "Coconut", "Grapes"},
		Symptoms:      []string{"encrusted bark/leaves", "yellowing", "sooty mould", "branch die-back"},
		Treatment:     []string{"DNOC 40 EC @ 1.5 l/ha in water", "Machine oil emulsion spray", "Dimethoate 30 EC"},
		Prevention:    []string{"Prune infested branches", "Encourage natural predators", "Ant management"},
	},
	{
		Name:          "Mango Hopper",
		AffectedCrops: []string{"Mango"},
		Symptoms:      []string{"yellowing and drying of inflorescences", "honeydew secretion", "sooty mould"},
		Treatment:     []string{"Imidacloprid 17.8 SL @ 0.5 ml/l water", "Carbaryl 50 WP @ 2 g/l water"},
		Prevention:    []string{"Prune dense canopy", "Remove weeds", "Spray at panicle emergence"},
	},
	{
		Name:          "Coconut Mite (Eriophyid)",
		AffectedCrops: []string{"Coconut"},
		Symptoms:      []string{"triangular brown patches on husk", "scarring", "stunted nut"},
		Treatment:     []string{"Wettable sulphur 80 WP @ 2 g/l water", "Dicofol 18.5 EC"},
		Prevention:    []string{"Avoid water stress", "Remove dried leaves", "Summer spraying"},
	},
}
