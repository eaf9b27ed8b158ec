package catalog

import "github.com/PumbaSquek/chiedimi-tutto-subito/models"

// SeedCatalog returns the built-in dish catalog every fresh session starts
// from. Categories and dishes match the house menu shipped with the app.
func SeedCatalog() Catalog {
	return Catalog{Categories: []models.Category{
		{
			ID:   "antipasti",
			Name: "Antipasti",
			Kind: models.CategoryKindSavory,
			Items: []models.MenuItem{
				{ID: "bruschetta", Name: "Bruschetta Classica", Description: "Pane tostato con pomodoro fresco, basilico e aglio", Price: "8.00", Category_id: "antipasti"},
				{ID: "antipasto_mare", Name: "Antipasto di Mare", Description: "Selezione di crudi e marinati del giorno", Price: "16.00", Category_id: "antipasti"},
				{ID: "tagliere", Name: "Tagliere di Salumi e Formaggi", Description: "Selezione di salumi locali e formaggi stagionati", Price: "14.00", Category_id: "antipasti"},
			},
		},
		{
			ID:   "primi",
			Name: "Primi Piatti",
			Kind: models.CategoryKindChef,
			Items: []models.MenuItem{
				{ID: "carbonara", Name: "Spaghetti alla Carbonara", Description: "La ricetta tradizionale romana con guanciale e pecorino", Price: "12.00", Category_id: "primi"},
				{ID: "risotto_porcini", Name: "Risotto ai Porcini", Description: "Riso carnaroli con funghi porcini freschi", Price: "15.00", Category_id: "primi"},
				{ID: "amatriciana", Name: "Bucatini all'Amatriciana", Description: "Pasta con guanciale, pomodoro San Marzano e pecorino", Price: "11.00", Category_id: "primi"},
			},
		},
		{
			ID:   "secondi",
			Name: "Secondi Piatti",
			Kind: models.CategoryKindSavory,
			Items: []models.MenuItem{
				{ID: "tagliata", Name: "Tagliata di Manzo", Description: "Carne di manzo con rucola e grana, cottura al sangue", Price: "22.00", Category_id: "secondi"},
				{ID: "branzino", Name: "Branzino in Crosta di Sale", Description: "Pesce fresco del giorno cotto in crosta di sale", Price: "18.00", Category_id: "secondi"},
				{ID: "ossobuco", Name: "Ossobuco alla Milanese", Description: "Tradizionale brasato lombardo con risotto giallo", Price: "24.00", Category_id: "secondi"},
			},
		},
		{
			ID:   "dolci",
			Name: "Dolci",
			Kind: models.CategoryKindDessert,
			Items: []models.MenuItem{
				{ID: "tiramisu", Name: "Tiramisù della Casa", Description: "Il nostro tiramisù preparato secondo la ricetta tradizionale", Price: "6.00", Category_id: "dolci"},
				{ID: "panna_cotta", Name: "Panna Cotta ai Frutti di Bosco", Description: "Dessert cremoso con salsa ai frutti di bosco freschi", Price: "5.50", Category_id: "dolci"},
			},
		},
		{
			ID:   "bevande",
			Name: "Bevande",
			Kind: models.CategoryKindDrink,
			Items: []models.MenuItem{
				{ID: "vino_rosso", Name: "Chianti Classico", Description: "Vino rosso toscano DOCG", Price: "25.00", Category_id: "bevande"},
				{ID: "acqua", Name: "Acqua Naturale/Frizzante", Description: "Bottiglia 0.75L", Price: "2.50", Category_id: "bevande"},
				{ID: "caffe", Name: "Caffè Espresso", Description: "Miscela arabica italiana", Price: "1.50", Category_id: "bevande"},
			},
		},
	}}
}
