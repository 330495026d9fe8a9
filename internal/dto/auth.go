package dto

type LoginRequest struct {
	Usuario    string `json:"usuario"`
	Contrasena string `json:"contrasena"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	ExpiraEn int64  `json:"expira_en"`
	Usuario  string `json:"usuario"`
	Rol      string `json:"rol"`
}
