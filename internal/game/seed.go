package game

import (
	"fmt"
	"math/rand/v2"
)

// defaultNodes maps the capital list to nodes with ids starting at
// 1000. Difficulty and points are rolled once at first run and then
// live in the persisted snapshot.
func defaultNodes() []Node {
	nodes := make([]Node, 0, len(capitals))
	for i, c := range capitals {
		nodes = append(nodes, Node{
			ID:         int64(1000 + i),
			Name:       fmt.Sprintf("%s [%s]", c.city, c.country),
			Lat:        c.lat,
			Lng:        c.lng,
			Difficulty: difficulties[rand.IntN(len(difficulties))],
			Points:     rand.IntN(500) + 100,
		})
	}
	return nodes
}

// defaultTeams is the fixed starting roster.
func defaultTeams() []Team {
	return []Team{
		{ID: 1, Name: "Team Alpha", Color: "#00ff9d", IP: "192.168.1.101", Location: "Tokyo, Japan"},
		{ID: 2, Name: "Team Beta", Color: "#7000ff", IP: "192.168.1.102", Location: "San Francisco, USA"},
		{ID: 3, Name: "Team Gamma", Color: "#ff0055", IP: "192.168.1.103", Location: "Berlin, Germany"},
		{ID: 4, Name: "Team Delta", Color: "#00f7ff", IP: "192.168.1.104", Location: "Singapore"},
	}
}

type seedCapital struct {
	city    string
	country string
	lat     float64
	lng     float64
}

var capitals = []seedCapital{
	{"Kabul", "Afghanistan", 34.5553, 69.2075},
	{"Tirana", "Albania", 41.3275, 19.8187},
	{"Algiers", "Algeria", 36.7538, 3.0588},
	{"Andorra la Vella", "Andorra", 42.5063, 1.5218},
	{"Luanda", "Angola", -8.8390, 13.2894},
	{"Saint John's", "Antigua and Barbuda", 17.1274, -61.8468},
	{"Buenos Aires", "Argentina", -34.6037, -58.3816},
	{"Yerevan", "Armenia", 40.1792, 44.4991},
	{"Canberra", "Australia", -35.2809, 149.1300},
	{"Vienna", "Austria", 48.2082, 16.3738},
	{"Baku", "Azerbaijan", 40.4093, 49.8671},
	{"Nassau", "Bahamas", 25.0443, -77.3504},
	{"Manama", "Bahrain", 26.2285, 50.5860},
	{"Dhaka", "Bangladesh", 23.8103, 90.4125},
	{"Bridgetown", "Barbados", 13.1132, -59.5988},
	{"Minsk", "Belarus", 53.9045, 27.5615},
	{"Brussels", "Belgium", 50.8503, 4.3517},
	{"Belmopan", "Belize", 17.2510, -88.7590},
	{"Porto-Novo", "Benin", 6.4969, 2.6283},
	{"Thimphu", "Bhutan", 27.4728, 89.6390},
	{"La Paz", "Bolivia", -16.4897, -68.1193},
	{"Sarajevo", "Bosnia and Herzegovina", 43.8563, 18.4131},
	{"Gaborone", "Botswana", -24.6282, 25.9231},
	{"Brasilia", "Brazil", -15.8267, -47.9218},
	{"Bandar Seri Begawan", "Brunei", 4.9031, 114.9398},
	{"Sofia", "Bulgaria", 42.6977, 23.3219},
	{"Ouagadougou", "Burkina Faso", 12.3714, -1.5197},
	{"Gitega", "Burundi", -3.4264, 29.9306},
	{"Praia", "Cabo Verde", 14.9330, -23.5133},
	{"Phnom Penh", "Cambodia", 11.5564, 104.9282},
	{"Yaounde", "Cameroon", 3.8480, 11.5021},
	{"Ottawa", "Canada", 45.4215, -75.6972},
	{"Bangui", "Central African Republic", 4.3947, 18.5582},
	{"N'Djamena", "Chad", 12.1348, 15.0557},
	{"Santiago", "Chile", -33.4489, -70.6693},
	{"Beijing", "China", 39.9042, 116.4074},
	{"Bogota", "Colombia", 4.7110, -74.0721},
	{"Moroni", "Comoros", -11.7172, 43.2473},
	{"Brazzaville", "Congo", -4.2634, 15.2429},
	{"San Jose", "Costa Rica", 9.9281, -84.0907},
	{"Yamoussoukro", "Cote d'Ivoire", 6.8276, -5.2893},
	{"Zagreb", "Croatia", 45.8150, 15.9819},
	{"Havana", "Cuba", 23.1136, -82.3666},
	{"Nicosia", "Cyprus", 35.1856, 33.3823},
	{"Prague", "Czechia", 50.0755, 14.4378},
	{"Kinshasa", "DR Congo", -4.4419, 15.2663},
	{"Copenhagen", "Denmark", 55.6761, 12.5683},
	{"Djibouti", "Djibouti", 11.5721, 43.1456},
	{"Roseau", "Dominica", 15.3092, -61.3794},
	{"Santo Domingo", "Dominican Republic", 18.4861, -69.9312},
	{"Quito", "Ecuador", -0.1807, -78.4678},
	{"Cairo", "Egypt", 30.0444, 31.2357},
	{"San Salvador", "El Salvador", 13.6929, -89.2182},
	{"Malabo", "Equatorial Guinea", 3.7550, 8.7371},
	{"Asmara", "Eritrea", 15.3229, 38.9251},
	{"Tallinn", "Estonia", 59.4370, 24.7536},
	{"Mbabane", "Eswatini", -26.3054, 31.1367},
	{"Addis Ababa", "Ethiopia", 9.0320, 38.7469},
	{"Suva", "Fiji", -18.1248, 178.4501},
	{"Helsinki", "Finland", 60.1699, 24.9384},
	{"Paris", "France", 48.8566, 2.3522},
	{"Libreville", "Gabon", 0.4162, 9.4673},
	{"Banjul", "Gambia", 13.4549, -16.5790},
	{"Tbilisi", "Georgia", 41.7151, 44.8271},
	{"Berlin", "Germany", 52.5200, 13.4050},
	{"Accra", "Ghana", 5.6037, -0.1870},
	{"Athens", "Greece", 37.9838, 23.7275},
	{"Saint George's", "Grenada", 12.0561, -61.7488},
	{"Guatemala City", "Guatemala", 14.6349, -90.5069},
	{"Conakry", "Guinea", 9.6412, -13.5784},
	{"Bissau", "Guinea-Bissau", 11.8817, -15.6178},
	{"Georgetown", "Guyana", 6.8013, -58.1551},
	{"Port-au-Prince", "Haiti", 18.5944, -72.3074},
	{"Tegucigalpa", "Honduras", 14.0723, -87.1921},
	{"Budapest", "Hungary", 47.4979, 19.0402},
	{"Reykjavik", "Iceland", 64.1466, -21.9426},
	{"New Delhi", "India", 28.6139, 77.2090},
	{"Jakarta", "Indonesia", -6.2088, 106.8456},
	{"Tehran", "Iran", 35.6892, 51.3890},
	{"Baghdad", "Iraq", 33.3152, 44.3661},
	{"Dublin", "Ireland", 53.3498, -6.2603},
	{"Jerusalem", "Israel", 31.7683, 35.2137},
	{"Rome", "Italy", 41.9028, 12.4964},
	{"Kingston", "Jamaica", 17.9712, -76.7936},
	{"Tokyo", "Japan", 35.6762, 139.6503},
	{"Amman", "Jordan", 31.9454, 35.9284},
	{"Astana", "Kazakhstan", 51.1694, 71.4491},
	{"Nairobi", "Kenya", -1.2921, 36.8219},
	{"Tarawa", "Kiribati", 1.4518, 172.9717},
	{"Pristina", "Kosovo", 42.6629, 21.1655},
	{"Kuwait City", "Kuwait", 29.3759, 47.9774},
	{"Bishkek", "Kyrgyzstan", 42.8746, 74.5698},
	{"Vientiane", "Laos", 17.9757, 102.6331},
	{"Riga", "Latvia", 56.9496, 24.1052},
	{"Beirut", "Lebanon", 33.8938, 35.5018},
	{"Maseru", "Lesotho", -29.3151, 27.4869},
	{"Monrovia", "Liberia", 6.3004, -10.7969},
	{"Tripoli", "Libya", 32.8872, 13.1913},
	{"Vaduz", "Liechtenstein", 47.1410, 9.5209},
	{"Vilnius", "Lithuania", 54.6872, 25.2797},
	{"Luxembourg", "Luxembourg", 49.6116, 6.1319},
	{"Antananarivo", "Madagascar", -18.8792, 47.5079},
	{"Lilongwe", "Malawi", -13.9626, 33.7741},
	{"Kuala Lumpur", "Malaysia", 3.1390, 101.6869},
	{"Male", "Maldives", 4.1755, 73.5093},
	{"Bamako", "Mali", 12.6392, -8.0029},
	{"Valletta", "Malta", 35.8989, 14.5146},
	{"Majuro", "Marshall Islands", 7.1164, 171.1858},
	{"Nouakchott", "Mauritania", 18.0735, -15.9582},
	{"Port Louis", "Mauritius", -20.1609, 57.5012},
	{"Mexico City", "Mexico", 19.4326, -99.1332},
	{"Palikir", "Micronesia", 6.9248, 158.1611},
	{"Chisinau", "Moldova", 47.0105, 28.8638},
	{"Monaco", "Monaco", 43.7384, 7.4246},
	{"Ulaanbaatar", "Mongolia", 47.8864, 106.9057},
	{"Podgorica", "Montenegro", 42.4304, 19.2594},
	{"Rabat", "Morocco", 34.0209, -6.8416},
	{"Maputo", "Mozambique", -25.9692, 32.5732},
	{"Naypyidaw", "Myanmar", 19.7633, 96.0785},
	{"Windhoek", "Namibia", -22.5609, 17.0658},
	{"Yaren", "Nauru", -0.5477, 166.9209},
	{"Kathmandu", "Nepal", 27.7172, 85.3240},
	{"Amsterdam", "Netherlands", 52.3676, 4.9041},
	{"Wellington", "New Zealand", -41.2866, 174.7756},
	{"Managua", "Nicaragua", 12.1150, -86.2362},
	{"Niamey", "Niger", 13.5116, 2.1254},
	{"Abuja", "Nigeria", 9.0765, 7.3986},
	{"Pyongyang", "North Korea", 39.0392, 125.7625},
	{"Skopje", "North Macedonia", 41.9973, 21.4280},
	{"Oslo", "Norway", 59.9139, 10.7522},
	{"Muscat", "Oman", 23.5880, 58.3829},
	{"Islamabad", "Pakistan", 33.6844, 73.0479},
	{"Ngerulmud", "Palau", 7.5005, 134.6242},
	{"Ramallah", "Palestine", 31.9038, 35.2034},
	{"Panama City", "Panama", 8.9824, -79.5199},
	{"Port Moresby", "Papua New Guinea", -9.4438, 147.1803},
	{"Asuncion", "Paraguay", -25.2637, -57.5759},
	{"Lima", "Peru", -12.0464, -77.0428},
	{"Manila", "Philippines", 14.5995, 120.9842},
	{"Warsaw", "Poland", 52.2297, 21.0122},
	{"Lisbon", "Portugal", 38.7223, -9.1393},
	{"Doha", "Qatar", 25.2854, 51.5310},
	{"Bucharest", "Romania", 44.4268, 26.1025},
	{"Moscow", "Russia", 55.7558, 37.6173},
	{"Kigali", "Rwanda", -1.9441, 30.0619},
	{"Basseterre", "Saint Kitts and Nevis", 17.3026, -62.7177},
	{"Castries", "Saint Lucia", 14.0101, -60.9875},
	{"Kingstown", "Saint Vincent and the Grenadines", 13.1600, -61.2248},
	{"Apia", "Samoa", -13.8506, -171.7513},
	{"San Marino", "San Marino", 43.9424, 12.4578},
	{"Sao Tome", "Sao Tome and Principe", 0.3302, 6.7333},
	{"Riyadh", "Saudi Arabia", 24.7136, 46.6753},
	{"Dakar", "Senegal", 14.7167, -17.4677},
	{"Belgrade", "Serbia", 44.7866, 20.4489},
	{"Victoria", "Seychelles", -4.6191, 55.4513},
	{"Freetown", "Sierra Leone", 8.4657, -13.2317},
	{"Singapore", "Singapore", 1.3521, 103.8198},
	{"Bratislava", "Slovakia", 48.1486, 17.1077},
	{"Ljubljana", "Slovenia", 46.0569, 14.5058},
	{"Honiara", "Solomon Islands", -9.4456, 159.9729},
	{"Mogadishu", "Somalia", 2.0469, 45.3182},
	{"Pretoria", "South Africa", -25.7479, 28.2293},
	{"Seoul", "South Korea", 37.5665, 126.9780},
	{"Juba", "South Sudan", 4.8594, 31.5713},
	{"Madrid", "Spain", 40.4168, -3.7038},
	{"Colombo", "Sri Lanka", 6.9271, 79.8612},
	{"Khartoum", "Sudan", 15.5007, 32.5599},
	{"Paramaribo", "Suriname", 5.8520, -55.2038},
	{"Stockholm", "Sweden", 59.3293, 18.0686},
	{"Bern", "Switzerland", 46.9480, 7.4474},
	{"Damascus", "Syria", 33.5138, 36.2765},
	{"Taipei", "Taiwan", 25.0330, 121.5654},
	{"Dushanbe", "Tajikistan", 38.5598, 68.7870},
	{"Dodoma", "Tanzania", -6.1630, 35.7516},
	{"Bangkok", "Thailand", 13.7563, 100.5018},
	{"Dili", "Timor-Leste", -8.5569, 125.5603},
	{"Lome", "Togo", 6.1256, 1.2254},
	{"Nuku'alofa", "Tonga", -21.1393, -175.2049},
	{"Port of Spain", "Trinidad and Tobago", 10.6596, -61.5086},
	{"Tunis", "Tunisia", 36.8065, 10.1815},
	{"Ankara", "Turkey", 39.9334, 32.8597},
	{"Ashgabat", "Turkmenistan", 37.9601, 58.3261},
	{"Funafuti", "Tuvalu", -8.5243, 179.1942},
	{"Kampala", "Uganda", 0.3476, 32.5825},
	{"Kyiv", "Ukraine", 50.4501, 30.5234},
	{"Abu Dhabi", "United Arab Emirates", 24.4539, 54.3773},
	{"London", "United Kingdom", 51.5074, -0.1278},
	{"Washington, D.C.", "United States", 38.9072, -77.0369},
	{"Montevideo", "Uruguay", -34.9011, -56.1645},
	{"Tashkent", "Uzbekistan", 41.2995, 69.2401},
	{"Port Vila", "Vanuatu", -17.7333, 168.3273},
	{"Vatican City", "Vatican City", 41.9029, 12.4534},
	{"Caracas", "Venezuela", 10.4806, -66.9036},
	{"Hanoi", "Vietnam", 21.0278, 105.8342},
	{"Sana'a", "Yemen", 15.3694, 44.1910},
	{"Lusaka", "Zambia", -15.3875, 28.3228},
	{"Harare", "Zimbabwe", -17.8252, 31.0335},
}
