package models

// CPSU main campus (Brgy. Camingawan) reference point.
const (
	CampusCenterLat = 9.8512
	CampusCenterLng = 122.8902
)

// CampusBuildings returns the static building list used to populate the
// buildings table the first time the service starts against an empty
// database.
func CampusBuildings() []Building {
	return []Building{
		{
			Name:        "Engineering Building",
			Latitude:    9.849483976129486,
			Longitude:   122.88873266985722,
			Category:    "Academic",
			Description: "Main building for the College of Engineering, featuring specialized labs and classrooms for all engineering disciplines.",
			Icon:        "settings",
		},
		{
			Name:        "Criminology Building",
			Latitude:    9.850387233353889,
			Longitude:   122.88930453759173,
			Category:    "Academic",
			Description: "The College of Criminal Justice Education (CCJE) building, providing facilities for the study and training of future law enforcement professionals.",
			Icon:        "building-2",
		},
		{
			Name:        "College of Business and Management",
			Latitude:    9.851816656751671,
			Longitude:   122.89028548885686,
			Category:    "Academic",
			Description: "Building for the College of Business and Management (CBM), focusing on business education, administration, and entrepreneurship.",
			Icon:        "book-open",
		},
		{
			Name:        "Administration Building",
			Latitude:    9.852851169965508,
			Longitude:   122.89046185580091,
			Category:    "Administrative",
			Description: "The central hub for campus administration, housing the principal offices, registrar, and other official services.",
			Icon:        "building-2",
		},
		{
			Name:        "CPSU Cafeteria",
			Latitude:    9.853320032929346,
			Longitude:   122.89095487677818,
			Category:    "Services",
			Description: "Main dining area providing various food and beverage options for students and staff members.",
			Icon:        "utensils",
		},
		{
			Name:        "Accreditation Center",
			Latitude:    9.853786447276793,
			Longitude:   122.89055908521105,
			Category:    "Administrative",
			Description: "The University Accreditation Center, dedicated to maintaining high educational standards and quality assurance for all campus programs.",
			Icon:        "info",
		},
		{
			Name:        "College of Arts and Sciences",
			Latitude:    9.853358263630586,
			Longitude:   122.88956960633499,
			Category:    "Academic",
			Description: "Building for the College of Arts and Sciences (CAS), providing a diverse range of programs in humanities, social sciences, and natural sciences.",
			Icon:        "book-open",
		},
		{
			Name:        "CPSU Mini Hotel",
			Latitude:    9.851324383731624,
			Longitude:   122.88897203870414,
			Category:    "Services",
			Description: "On-campus hotel facility providing accommodation services and a training ground for hospitality management students.",
			Icon:        "bed",
		},
		{
			Name:        "ROTC Office",
			Latitude:    9.853159463885627,
			Longitude:   122.88837059072797,
			Category:    "Administrative",
			Description: "Headquarters for the Reserve Officers' Training Corps (ROTC) unit on campus, managing student military training and leadership programs.",
			Icon:        "shield",
		},
		{
			Name:        "CPSU Gymnasium",
			Latitude:    9.85353030177207,
			Longitude:   122.88764885318288,
			Category:    "Sports",
			Description: "The primary venue for sports activities, physical education classes, and major university events and gatherings.",
			Icon:        "dumbbell",
		},
		{
			Name:        "Animal Science Building",
			Latitude:    9.854027772114106,
			Longitude:   122.88812404162148,
			Category:    "Academic",
			Description: "Specialized building for the study of animal sciences, featuring laboratories and classrooms for agriculture students.",
			Icon:        "leaf",
		},
		{
			Name:        "IT Department",
			Latitude:    9.854358386635596,
			Longitude:   122.88826100705529,
			Category:    "Academic",
			Description: "The Information Technology Department, housing computer labs and serving as the hub for tech-related studies.",
			Icon:        "monitor",
		},
		{
			Name:        "University Library",
			Latitude:    9.854402650739477,
			Longitude:   122.88926241098692,
			Category:    "Academic",
			Description: "The main university library, providing a vast collection of books, research materials, and quiet study spaces for students.",
			Icon:        "book-open",
		},
		{
			Name:        "COTED Department",
			Latitude:    9.854456628587828,
			Longitude:   122.89036155855534,
			Category:    "Academic",
			Description: "The College of Teacher Education (COTED) department, dedicated to training future educators and academic leaders.",
			Icon:        "graduation-cap",
		},
		{
			Name:        "College of Agriculture and Forestry",
			Latitude:    9.854706275993783,
			Longitude:   122.89084778584538,
			Category:    "Academic",
			Description: "The College of Agriculture and Forestry (CAF), focusing on sustainable farming, forestry management, and agricultural sciences.",
			Icon:        "leaf",
		},
		{
			Name:        "College of Agriculture",
			Latitude:    9.850149717160772,
			Longitude:   122.88824959679347,
			Category:    "Academic",
			Description: "Academic building focused on agricultural research, crop science, and sustainable farming practices.",
			Icon:        "leaf",
		},
		{
			Name:        "Registrar's Office",
			Latitude:    9.853129642291623,
			Longitude:   122.89001735926348,
			Category:    "Administrative",
			Description: "The University Registrar's Office, responsible for managing student records, admissions, and ensuring smooth academic transitions for all students.",
			Icon:        "graduation-cap",
		},
	}
}
