package memory

import "eventsManager/internal/models"

var seedEvents = []models.Event{
	{
		ID:          "1",
		Title:       "Conférence Tech Innovation 2025",
		Description: "Venez découvrir les dernières innovations technologiques et les tendances de demain lors de notre conférence annuelle.",
		Date:        "2025-06-15",
		Location:    "Palais des Congrès, Paris",
		ImageURL:    "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?q=80&w=1000",
		Organizer:   "Tech Solutions",
		Category:    models.CategoryConference,
	},
	{
		ID:          "2",
		Title:       "Concert de Jazz au Parc",
		Description: "Une soirée musicale exceptionnelle avec les meilleurs artistes de jazz du moment dans un cadre verdoyant.",
		Date:        "2025-07-10",
		Location:    "Parc des Expositions, Lyon",
		ImageURL:    "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?q=80&w=1000",
		Organizer:   "Music Events",
		Category:    models.CategoryConcert,
	},
	{
		ID:          "3",
		Title:       "Exposition d'Art Contemporain",
		Description: "Découvrez les œuvres des artistes émergents qui façonnent l'art contemporain d'aujourd'hui.",
		Date:        "2025-08-05",
		Location:    "Galerie Moderne, Marseille",
		ImageURL:    "https://images.unsplash.com/photo-1531058020387-3be344556be6?q=80&w=1000",
		Organizer:   "Art & Culture",
		Category:    models.CategoryExhibition,
	},
	{
		ID:          "4",
		Title:       "Atelier de Cuisine Française",
		Description: "Apprenez à cuisiner comme un chef français avec nos instructeurs professionnels dans une ambiance conviviale.",
		Date:        "2025-09-20",
		Location:    "École de Cuisine, Bordeaux",
		ImageURL:    "https://images.unsplash.com/photo-1556910103-1c02745aee4d?q=80&w=1000",
		Organizer:   "Gourmet France",
		Category:    models.CategoryWorkshop,
	},
	{
		ID:          "5",
		Title:       "Tournoi de Tennis Amateur",
		Description: "Participez à notre tournoi annuel ouvert à tous les niveaux et passez un moment sportif et convivial.",
		Date:        "2025-10-12",
		Location:    "Centre Sportif Municipal, Toulouse",
		ImageURL:    "https://images.unsplash.com/photo-1595435934249-5df7ed86e1c1?q=80&w=1000",
		Organizer:   "Sport Pour Tous",
		Category:    models.CategorySport,
	},
	{
		ID:          "6",
		Title:       "Salon du Livre Ancien",
		Description: "Une occasion unique pour les bibliophiles de découvrir des ouvrages rares et de rencontrer des collectionneurs passionnés.",
		Date:        "2025-11-08",
		Location:    "Bibliothèque Historique, Nice",
		ImageURL:    "https://images.unsplash.com/photo-1507842217343-583bb7270b66?q=80&w=1000",
		Organizer:   "Association des Livres Anciens",
		Category:    models.CategoryOther,
	},
}

var seedComments = []models.Comment{
	{
		ID:       "c1",
		EventID:  "1",
		Author:   "Marie Dupont",
		Content:  "J'ai assisté à l'édition précédente et c'était formidable. Je recommande vivement !",
		Date:     "2025-05-10",
		Approved: true,
	},
	{
		ID:       "c2",
		EventID:  "1",
		Author:   "Pierre Martin",
		Content:  "Est-ce que le programme détaillé est déjà disponible quelque part ?",
		Date:     "2025-05-11",
		Approved: true,
	},
	{
		ID:       "c3",
		EventID:  "2",
		Author:   "Lucie Bernard",
		Content:  "Je suis une grande fan de jazz, j'ai hâte de participer à cet événement !",
		Date:     "2025-05-12",
		Approved: true,
	},
	{
		ID:       "c4",
		EventID:  "3",
		Author:   "Thomas Petit",
		Content:  "Quels artistes seront présents à cette exposition ?",
		Date:     "2025-05-13",
		Approved: true,
	},
}
