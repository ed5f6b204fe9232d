package keywords

// marketKeywords is the fixed market keyword group AND-combined with every
// entity query.
var marketKeywords = []string{"India", "Indian market", "NSE", "BSE", "Indian economy"}

// sectorEntry is one sector's search configuration
type sectorEntry struct {
	Keywords []string
	Stocks   map[string][]string
	// stockOrder preserves configured stock ordering for UI dropdowns
	stockOrder []string
}

// sectorOrder preserves configured sector ordering
var sectorOrder = []string{
	"Nifty IT",
	"Nifty Bank",
	"Nifty Auto",
	"Nifty Pharma",
	"Nifty FMCG",
	"Nifty Consumer Durables",
	"Nifty Financial Services",
	"Nifty Media",
	"Nifty Metal",
	"Nifty PSU Bank",
	"Nifty Private Bank",
	"Nifty Realty",
	"Nifty Commodities",
	"Nifty Energy",
	"Nifty Infrastructure",
	"Nifty PSE",
	"Nifty Oil & Gas",
	"Nifty Healthcare",
	"Nifty Midcap Liquid 15",
	"Nifty CPSE",
	"Nifty Services Sector",
	"Nifty India Manufacturing",
}

// defaultTable is the embedded sector/stock keyword configuration. A TOML
// file configured via keywords.file replaces it entirely.
var defaultTable = map[string]*sectorEntry{
	"Nifty IT": {
		Keywords: []string{
			"Information Technology India", "Infosys", "TCS", "Wipro", "HCL Technologies",
			"Tech Mahindra", "LTI Mindtree", "software services India", "cloud computing India",
			"artificial intelligence India", "NASSCOM", "Indian IT exports", "Bengaluru tech",
		},
		stockOrder: []string{"Infosys", "TCS", "Wipro", "HCL Technologies", "Tech Mahindra"},
		Stocks: map[string][]string{
			"Infosys":          {"Infosys", "INFY", "Infosys earnings", "Infosys deal"},
			"TCS":              {"TCS", "Tata Consultancy Services", "TCS earnings", "TCS deal"},
			"Wipro":            {"Wipro", "Wipro earnings", "Wipro contract"},
			"HCL Technologies": {"HCL Technologies", "HCL Tech", "HCLTech earnings"},
			"Tech Mahindra":    {"Tech Mahindra", "Tech Mahindra earnings"},
		},
	},
	"Nifty Bank": {
		Keywords: []string{
			"Banking India", "HDFC Bank", "ICICI Bank", "SBI", "Axis Bank", "Kotak Mahindra Bank",
			"RBI", "non-performing assets India", "digital banking India", "UPI India",
			"banking reforms India", "fintech India",
		},
		stockOrder: []string{"HDFC Bank", "ICICI Bank", "SBI", "Axis Bank", "Kotak Mahindra Bank"},
		Stocks: map[string][]string{
			"HDFC Bank":           {"HDFC Bank", "HDFC Bank results", "HDFC Bank loans"},
			"ICICI Bank":          {"ICICI Bank", "ICICI Bank results"},
			"SBI":                 {"SBI", "State Bank of India", "SBI results"},
			"Axis Bank":           {"Axis Bank", "Axis Bank results"},
			"Kotak Mahindra Bank": {"Kotak Mahindra Bank", "Kotak Bank results"},
		},
	},
	"Nifty Auto": {
		Keywords: []string{
			"Automobile industry India", "Maruti Suzuki", "Tata Motors", "Mahindra & Mahindra",
			"Bajaj Auto", "Hero MotoCorp", "electric vehicles India", "auto sales India",
			"auto components India", "FAME scheme India", "BS6 norms India",
		},
		stockOrder: []string{"Maruti Suzuki", "Tata Motors", "Mahindra & Mahindra", "Bajaj Auto", "Hero MotoCorp"},
		Stocks: map[string][]string{
			"Maruti Suzuki":       {"Maruti Suzuki", "Maruti sales", "Maruti Suzuki results"},
			"Tata Motors":         {"Tata Motors", "Tata Motors sales", "Tata Motors EV"},
			"Mahindra & Mahindra": {"Mahindra & Mahindra", "Mahindra auto", "Mahindra SUV"},
			"Bajaj Auto":          {"Bajaj Auto", "Bajaj Auto sales"},
			"Hero MotoCorp":       {"Hero MotoCorp", "Hero MotoCorp sales"},
		},
	},
	"Nifty Pharma": {
		Keywords: []string{
			"Pharmaceuticals India", "Sun Pharma", "Dr Reddy's Labs", "Cipla", "Aurobindo Pharma",
			"Lupin", "pharma exports India", "generic drugs India", "DCGI", "USFDA India",
			"pharma R&D India",
		},
		stockOrder: []string{"Sun Pharma", "Dr Reddy's Labs", "Cipla", "Aurobindo Pharma", "Lupin"},
		Stocks: map[string][]string{
			"Sun Pharma":       {"Sun Pharma", "Sun Pharmaceutical", "Sun Pharma USFDA"},
			"Dr Reddy's Labs":  {"Dr Reddy's", "Dr Reddys Laboratories", "Dr Reddy's USFDA"},
			"Cipla":            {"Cipla", "Cipla results", "Cipla USFDA"},
			"Aurobindo Pharma": {"Aurobindo Pharma", "Aurobindo USFDA"},
			"Lupin":            {"Lupin pharma", "Lupin results"},
		},
	},
	"Nifty FMCG": {
		Keywords: []string{
			"FMCG India", "Hindustan Unilever", "ITC India", "Nestle India", "Britannia",
			"Dabur India", "Godrej Consumer", "FMCG sales India", "rural consumption India",
			"FMCG marketing India", "FMCG e-commerce India",
		},
		stockOrder: []string{"Hindustan Unilever", "ITC", "Nestle India", "Britannia", "Dabur"},
		Stocks: map[string][]string{
			"Hindustan Unilever": {"Hindustan Unilever", "HUL results", "HUL volumes"},
			"ITC":                {"ITC India", "ITC results", "ITC cigarettes FMCG"},
			"Nestle India":       {"Nestle India", "Nestle India results", "Maggi"},
			"Britannia":          {"Britannia", "Britannia Industries results"},
			"Dabur":              {"Dabur India", "Dabur results"},
		},
	},
	"Nifty Consumer Durables": {
		Keywords: []string{
			"Consumer durables India", "Havells India", "Voltas", "Whirlpool India",
			"Crompton Greaves", "Bajaj Electricals", "home appliances India",
			"consumer electronics India", "durables sales India", "smart appliances India",
		},
	},
	"Nifty Financial Services": {
		Keywords: []string{
			"Financial services India", "Bajaj Finance", "HDFC Life", "SBI Life Insurance",
			"Shriram Finance", "Cholamandalam Finance", "NBFC India", "insurance India",
			"SEBI", "fintech India", "digital finance India",
		},
	},
	"Nifty Media": {
		Keywords: []string{
			"Media India", "Zee Entertainment", "Sun TV Network", "PVR Inox", "Dish TV",
			"Network18", "digital media India", "OTT India", "media advertising India",
			"TRAI", "media consumption India",
		},
	},
	"Nifty Metal": {
		Keywords: []string{
			"Metals India", "Tata Steel", "JSW Steel", "Hindalco", "Vedanta", "SAIL",
			"steel production India", "aluminium India", "mining India", "metal prices India",
		},
		stockOrder: []string{"Tata Steel", "JSW Steel", "Hindalco", "Vedanta"},
		Stocks: map[string][]string{
			"Tata Steel": {"Tata Steel", "Tata Steel results", "Tata Steel production"},
			"JSW Steel":  {"JSW Steel", "JSW Steel results"},
			"Hindalco":   {"Hindalco", "Hindalco results", "Novelis"},
			"Vedanta":    {"Vedanta", "Vedanta results", "Vedanta demerger"},
		},
	},
	"Nifty PSU Bank": {
		Keywords: []string{
			"Public sector banks India", "State Bank of India", "Bank of Baroda",
			"Punjab National Bank", "Canara Bank", "Union Bank of India", "RBI",
			"PSU bank reforms India", "non-performing assets PSU banks", "PSU bank mergers India",
		},
	},
	"Nifty Private Bank": {
		Keywords: []string{
			"Private banks India", "HDFC Bank", "ICICI Bank", "Axis Bank",
			"Kotak Mahindra Bank", "IndusInd Bank", "RBI", "private bank loans India",
			"digital banking India", "fintech India",
		},
	},
	"Nifty Realty": {
		Keywords: []string{
			"Real estate India", "DLF", "Godrej Properties", "Oberoi Realty",
			"Prestige Estates", "Brigade Enterprises", "RERA India", "housing India",
			"commercial real estate India", "real estate prices India",
		},
	},
	"Nifty Commodities": {
		Keywords: []string{
			"Commodities India", "UltraTech Cement", "Shree Cement", "Pidilite Industries",
			"Asian Paints", "Grasim Industries", "cement industry India", "chemicals India",
			"commodities prices India", "commodities exports India",
		},
	},
	"Nifty Energy": {
		Keywords: []string{
			"Energy India", "Reliance Industries", "NTPC", "Power Grid", "Adani Green Energy",
			"Tata Power", "renewable energy India", "solar energy India", "energy policy India",
			"energy demand India",
		},
		stockOrder: []string{"Reliance Industries", "NTPC", "Tata Power", "Adani Green Energy"},
		Stocks: map[string][]string{
			"Reliance Industries": {"Reliance Industries", "RIL results", "Reliance Jio", "Reliance retail"},
			"NTPC":                {"NTPC", "NTPC results", "NTPC capacity"},
			"Tata Power":          {"Tata Power", "Tata Power results", "Tata Power renewable"},
			"Adani Green Energy":  {"Adani Green", "Adani Green Energy results"},
		},
	},
	"Nifty Infrastructure": {
		Keywords: []string{
			"Infrastructure India", "Larsen & Toubro", "Adani Ports", "GMR Infrastructure",
			"IRB Infrastructure", "KNR Constructions", "roads India", "smart cities India",
			"infrastructure financing India", "railways India",
		},
	},
	"Nifty PSE": {
		Keywords: []string{
			"Public sector enterprises India", "ONGC", "Coal India", "BHEL", "GAIL India",
			"IOC", "PSE disinvestment India", "PSE reforms India", "Indian PSE stocks",
			"PSE earnings India",
		},
	},
	"Nifty Oil & Gas": {
		Keywords: []string{
			"Oil and gas India", "Reliance Industries", "ONGC", "Indian Oil", "BPCL",
			"HPCL", "GAIL India", "oil exploration India", "gas distribution India",
			"oil prices India", "LNG India",
		},
	},
	"Nifty Healthcare": {
		Keywords: []string{
			"Healthcare India", "Apollo Hospitals", "Fortis Healthcare", "Max Healthcare",
			"Metropolis Healthcare", "Dr Lal PathLabs", "hospitals India", "telemedicine India",
			"healthcare policy India", "diagnostics India",
		},
	},
	"Nifty Midcap Liquid 15": {
		Keywords: []string{
			"Midcap India", "Ashok Leyland", "Bharat Forge", "Container Corporation",
			"Tata Power", "Godrej Properties", "midcap stocks India", "midcap growth India",
			"midcap earnings India", "midcap investments India",
		},
	},
	"Nifty CPSE": {
		Keywords: []string{
			"CPSE India", "NTPC", "Power Grid", "Oil India", "NBCC India", "BHEL",
			"CPSE disinvestment India", "CPSE reforms India", "Indian CPSE stocks",
			"CPSE earnings India",
		},
	},
	"Nifty Services Sector": {
		Keywords: []string{
			"Services sector India", "Infosys", "HDFC Bank", "Bharti Airtel", "TCS",
			"ICICI Bank", "IT services India", "financial services India", "telecom India",
			"services growth India",
		},
	},
	"Nifty India Manufacturing": {
		Keywords: []string{
			"Manufacturing India", "Siemens India", "Cummins India", "ABB India",
			"Bharat Electronics", "Larsen & Toubro", "make in India", "manufacturing growth India",
			"industrial manufacturing India", "manufacturing policy India",
		},
	},
}
