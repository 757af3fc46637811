package dto

type AddressRequestDTO struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Reference string `json:"reference,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

type AddressDTO struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Reference string `json:"reference,omitempty"`
	IsDefault bool   `json:"isDefault"`
}
