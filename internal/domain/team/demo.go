package team

// DemoCatalogue is the bundled 2025-26 La Liga clubs, loadable without
// the remote feed. IDs match the feed's team identifiers.
func DemoCatalogue() []Team {
	return []Team{
		{ID: 81, Name: "FC Barcelona", Short: "BAR", Venue: "Spotify Camp Nou"},
		{ID: 86, Name: "Real Madrid CF", Short: "RMA", Venue: "Santiago Bernabéu"},
		{ID: 78, Name: "Club Atlético de Madrid", Short: "ATM", Venue: "Cívitas Metropolitano"},
		{ID: 92, Name: "Real Sociedad de Fútbol", Short: "RSO", Venue: "Reale Arena"},
		{ID: 94, Name: "Villarreal CF", Short: "VIL", Venue: "Estadio de la Cerámica"},
		{ID: 77, Name: "Athletic Club", Short: "ATH", Venue: "San Mamés"},
		{ID: 90, Name: "Real Betis Balompié", Short: "BET", Venue: "Benito Villamarín"},
		{ID: 558, Name: "RC Celta de Vigo", Short: "CEL", Venue: "Abanca-Balaídos"},
		{ID: 89, Name: "RCD Mallorca", Short: "MLL", Venue: "Visit Mallorca Estadi"},
		{ID: 82, Name: "Getafe CF", Short: "GET", Venue: "Coliseum Alfonso Pérez"},
		{ID: 79, Name: "CA Osasuna", Short: "OSA", Venue: "El Sadar"},
		{ID: 87, Name: "Rayo Vallecano de Madrid", Short: "RAY", Venue: "Campo de Fútbol de Vallecas"},
		{ID: 95, Name: "Valencia CF", Short: "VAL", Venue: "Mestalla"},
		{ID: 559, Name: "Sevilla FC", Short: "SEV", Venue: "Ramón Sánchez-Pizjuán"},
		{ID: 263, Name: "Deportivo Alavés", Short: "ALA", Venue: "Mendizorroza"},
		{ID: 275, Name: "UD Las Palmas", Short: "LPA", Venue: "Estadio de Gran Canaria"},
		{ID: 264, Name: "RCD Espanyol de Barcelona", Short: "ESP", Venue: "RCDE Stadium"},
		{ID: 298, Name: "Girona FC", Short: "GIR", Venue: "Montilivi"},
		{ID: 285, Name: "CD Leganés", Short: "LEG", Venue: "Butarque"},
		{ID: 250, Name: "Real Valladolid CF", Short: "VLL", Venue: "José Zorrilla"},
	}
}
