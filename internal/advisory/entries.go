package advisory

// Entry is one advisory category: the keyword phrases that select it, the
// fixed answer, and its source list. Keywords are lowercase; a multi-word
// phrase must appear as a contiguous substring of the query to count.
type Entry struct {
	Keywords []string
	Answer   string
	Sources  []string
}

// DefaultEntries is the built-in advisory table. Order is a priority order:
// on a score tie the earlier category wins, so price questions beat pest
// questions when a query mentions both equally.
var DefaultEntries = []Entry{
	{
		Keywords: []string{"price", "mandi", "rate", "sell", "market"},
		Answer: "Mandi prices vary by location and date. Use the 'prices' command or API to fetch" +
			" current prices for your commodity and state. Agmarknet (agmarknet.gov.in) publishes" +
			" daily mandi arrivals and prices across India.",
		Sources: []string{"Agmarknet (agmarknet.gov.in)", "eNAM (enam.gov.in)"},
	},
	{
		Keywords: []string{"pest", "insect", "bug", "disease", "fungus", "infection"},
		Answer: "Identify the pest or disease by its visible symptoms. Use the 'pest' command with" +
			" symptom keywords to get matching pests and treatments. Always consult your local" +
			" Krishi Vigyan Kendra (KVK) for confirmation.",
		Sources: []string{"ICAR Pest Management", "Krishi Vigyan Kendra network"},
	},
	{
		Keywords: []string{"fertilizer", "urea", "dap", "npk", "manure", "compost"},
		Answer: "Fertilizer requirements depend on soil test results. Get a soil health card from" +
			" your state agriculture department. Base fertilizer application on NPK soil test" +
			" recommendations. ICAR recommends integrated nutrient management combining inorganic" +
			" and organic sources.",
		Sources: []string{"Soil Health Card scheme (soilhealth.dac.gov.in)", "ICAR nutrient management guidelines"},
	},
	{
		Keywords: []string{"irrigation", "water", "drip", "sprinkler", "rain"},
		Answer: "Irrigation scheduling should be based on crop stage and soil moisture. Drip" +
			" irrigation can save 40-50% water compared to flood irrigation. PM Krishi Sinchayee" +
			" Yojana provides subsidies for micro-irrigation systems.",
		Sources: []string{"PM Krishi Sinchayee Yojana", "ICAR crop water requirement data"},
	},
	{
		Keywords: []string{"seed", "variety", "sow", "hybrid", "certified"},
		Answer: "Use certified seeds from authorised dealers to ensure germination rates and disease" +
			" resistance. State seed corporations and ICAR release improved varieties. Consult your" +
			" block agriculture officer for variety recommendations suited to your region.",
		Sources: []string{"National Seeds Corporation (seedsindia.gov.in)", "ICAR variety releases"},
	},
	{
		Keywords: []string{"weather", "rain", "flood", "drought", "forecast"},
		Answer: "Monitor IMD weather forecasts at mausam.imd.gov.in. Agromet advisories are issued" +
			" every Tuesday and Friday for all districts. Subscribe to SMS alerts from your state" +
			" agriculture department.",
		Sources: []string{"IMD Agromet Advisory (agromet.imd.gov.in)", "Kisan Suvidha app"},
	},
	{
		Keywords: []string{"loan", "credit", "kcc", "finance", "money"},
		Answer: "Kisan Credit Card (KCC) provides short-term credit at 7% interest (4% with prompt" +
			" repayment). Apply through your nearest bank or primary agriculture credit society." +
			" PM Kisan scheme provides Rs 6000 per year in three instalments.",
		Sources: []string{"Kisan Credit Card (RBI guidelines)", "PM-KISAN (pmkisan.gov.in)"},
	},
	{
		Keywords: []string{"insurance", "fasal bima", "pradhan mantri"},
		Answer: "Pradhan Mantri Fasal Bima Yojana (PMFBY) covers crop loss due to natural calamities" +
			" at very low premium rates (2% for kharif, 1.5% for rabi). Enrol through banks or" +
			" Common Service Centres before the cutoff date.",
		Sources: []string{"PMFBY (pmfby.gov.in)", "Krishi Rakshak portal"},
	},
	{
		Keywords: []string{"msp", "minimum support price", "procurement"},
		Answer: "The government announces MSP for 23 kharif and rabi crops. Procurement happens" +
			" through FCI, NAFED, and state agencies. Register on eMitra or msprice portals for" +
			" selling at MSP centres. Check latest MSP at agricoop.gov.in.",
		Sources: []string{"Commission for Agricultural Costs & Prices (cacp.gov.in)", "FCI (fci.gov.in)"},
	},
}

// Fallback response used when no category scores above zero.
const fallbackAnswer = "I can help with crop prices, pest identification, fertilizers, irrigation," +
	" seeds, weather, loans, insurance, and MSP. Please describe your query in more" +
	" detail or use specific commands for prices and pest identification."

var fallbackSources = []string{"Kisan Call Centre (1800-180-1551)", "Kisan Suvidha App"}
