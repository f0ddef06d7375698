package entity

// ShopProfile is the shop identity printed on every invoice. It is injected
// from configuration at construction time rather than read from a package
// singleton, so two services can bill for two different shops.
type ShopProfile struct {
	Name           string `json:"name"`
	Owner          string `json:"owner"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	GST            string `json:"gst"`
	CurrencySymbol string `json:"currency_symbol"`
}
