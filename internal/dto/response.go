package dto

// Respuesta es el sobre estándar de la API: {exito, data?, mensaje?}.
type Respuesta struct {
	Exito   bool        `json:"exito"`
	Data    interface{} `json:"data,omitempty"`
	Mensaje string      `json:"mensaje,omitempty"`
}

func OK(data interface{}, mensaje string) Respuesta {
	return Respuesta{
		Exito:   true,
		Data:    data,
		Mensaje: mensaje,
	}
}

func Fallo(mensaje string) Respuesta {
	return Respuesta{
		Exito:   false,
		Mensaje: mensaje,
	}
}

// Meta acompaña listados paginados.
type Meta struct {
	Pagina       int   `json:"pagina"`
	PorPagina    int   `json:"por_pagina"`
	TotalPaginas int   `json:"total_paginas"`
	Total        int64 `json:"total"`
}

type RespuestaPaginada struct {
	Exito bool        `json:"exito"`
	Data  interface{} `json:"data"`
	Meta  *Meta       `json:"meta"`
}

func OKPaginado(data interface{}, meta *Meta) RespuestaPaginada {
	return RespuestaPaginada{Exito: true, Data: data, Meta: meta}
}
