package types

const (
	// ModuleName defines the module name
	ModuleName = "bookkeeper"

	// SupplyAccount is the counter-account used in audit entries for minted
	// and burned coins.
	SupplyAccount = "supply"
)
