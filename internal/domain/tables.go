package domain

// Tables lists the models managed by schema migration
var Tables = []interface{}{
	// Catalog
	&Product{},
}
