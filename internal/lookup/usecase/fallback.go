package usecase

import "github.com/shandysiswandi/unifydesk/internal/lookup/entity"

// Fallback data keeps the signup form usable when both the cache and the
// upstream provider are unavailable.
var fallbackStates = []entity.State{
	{Name: "Andhra Pradesh", Code: "AP"},
	{Name: "Arunachal Pradesh", Code: "AR"},
	{Name: "Assam", Code: "AS"},
	{Name: "Bihar", Code: "BR"},
	{Name: "Chhattisgarh", Code: "CT"},
	{Name: "Goa", Code: "GA"},
	{Name: "Gujarat", Code: "GJ"},
	{Name: "Haryana", Code: "HR"},
	{Name: "Himachal Pradesh", Code: "HP"},
	{Name: "Jharkhand", Code: "JH"},
	{Name: "Karnataka", Code: "KA"},
	{Name: "Kerala", Code: "KL"},
	{Name: "Madhya Pradesh", Code: "MP"},
	{Name: "Maharashtra", Code: "MH"},
	{Name: "Manipur", Code: "MN"},
	{Name: "Meghalaya", Code: "ML"},
	{Name: "Mizoram", Code: "MZ"},
	{Name: "Nagaland", Code: "NL"},
	{Name: "Odisha", Code: "OR"},
	{Name: "Punjab", Code: "PB"},
	{Name: "Rajasthan", Code: "RJ"},
	{Name: "Sikkim", Code: "SK"},
	{Name: "Tamil Nadu", Code: "TN"},
	{Name: "Telangana", Code: "TG"},
	{Name: "Tripura", Code: "TR"},
	{Name: "Uttar Pradesh", Code: "UP"},
	{Name: "Uttarakhand", Code: "UT"},
	{Name: "West Bengal", Code: "WB"},
	{Name: "Andaman and Nicobar Islands", Code: "AN"},
	{Name: "Chandigarh", Code: "CH"},
	{Name: "Dadra and Nagar Haveli and Daman and Diu", Code: "DH"},
	{Name: "Delhi", Code: "DL"},
	{Name: "Jammu and Kashmir", Code: "JK"},
	{Name: "Ladakh", Code: "LA"},
	{Name: "Lakshadweep", Code: "LD"},
	{Name: "Puducherry", Code: "PY"},
}

var fallbackCities = map[string][]string{
	"KA": {"Bengaluru", "Mysuru", "Mangaluru", "Hubballi", "Belagavi"},
	"MH": {"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad"},
	"TN": {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem"},
	"DL": {"New Delhi", "Delhi"},
	"WB": {"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri"},
	"UP": {"Lucknow", "Kanpur", "Varanasi", "Agra", "Prayagraj"},
	"GJ": {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Gandhinagar"},
	"TG": {"Hyderabad", "Warangal", "Nizamabad", "Karimnagar"},
	"RJ": {"Jaipur", "Jodhpur", "Udaipur", "Kota", "Ajmer"},
	"KL": {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur", "Kollam"},
}
