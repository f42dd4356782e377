package farm

// Inventory holds the player's two counters.
type Inventory struct {
	Coins   int
	Carrots int
}

// AddHarvest credits one harvest of crop.
func (inv *Inventory) AddHarvest(crop Crop) {
	inv.Carrots += crop.YieldCarrots
	inv.Coins += crop.YieldCoins
}
