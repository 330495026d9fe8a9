package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
)

// TamanoLotePorDefecto es la cantidad de filas por solicitud.
const TamanoLotePorDefecto = 1000

// Estado agregado de una importación completa.
type Estado string

const (
	EstadoExito     Estado = "exito"
	EstadoConAvisos Estado = "exito_con_avisos"
	EstadoFracaso   Estado = "fracaso"
)

// ResultadoImportacion acumula los resultados de todos los lotes enviados.
type ResultadoImportacion struct {
	Enviados     int
	Insertados   int
	Actualizados int
	SinCambios   int
	Errores      []string
}

// Afectados es el total de filas que quedaron reflejadas en la base.
func (r *ResultadoImportacion) Afectados() int {
	return r.Insertados + r.Actualizados + r.SinCambios
}

// NoContabilizados es la cantidad de filas enviadas que no figuran en
// ningún contador ni en la lista de errores.
func (r *ResultadoImportacion) NoContabilizados() int {
	n := r.Enviados - r.Afectados() - len(r.Errores)
	if n < 0 {
		return 0
	}
	return n
}

func (r *ResultadoImportacion) Estado() Estado {
	switch {
	case r.Afectados() > 0 && len(r.Errores) == 0:
		return EstadoExito
	case r.Afectados() > 0:
		return EstadoConAvisos
	default:
		return EstadoFracaso
	}
}

// Submitter parte los registros en lotes y los envía secuencialmente al
// endpoint de importación. Un lote fallido se registra y no impide el envío
// de los siguientes.
type Submitter struct {
	client    *http.Client
	url       string
	token     string
	chunkSize int
}

func NewSubmitter(url, token string, chunkSize int) *Submitter {
	if chunkSize <= 0 {
		chunkSize = TamanoLotePorDefecto
	}
	return &Submitter{
		// Timeout explícito para que una solicitud colgada no bloquee el
		// bucle de envío.
		client:    &http.Client{Timeout: 2 * time.Minute},
		url:       url,
		token:     token,
		chunkSize: chunkSize,
	}
}

// Enviar somete todos los registros en lotes secuenciales y devuelve el
// resultado agregado. Solo errores de armado de la solicitud abortan; los
// fallos de transporte o del servidor por lote quedan en Errores.
func (s *Submitter) Enviar(ctx context.Context, registros []dto.RegistroPrevia) (*ResultadoImportacion, error) {
	resultado := &ResultadoImportacion{Enviados: len(registros)}

	lotes := Particionar(registros, s.chunkSize)
	for i, lote := range lotes {
		parcial, err := s.enviarLote(ctx, lote)
		if err != nil {
			resultado.Errores = append(resultado.Errores,
				fmt.Sprintf("lote %d: %v", i+1, err))
			continue
		}
		resultado.Insertados += parcial.Insertados
		resultado.Actualizados += parcial.Actualizados
		resultado.SinCambios += parcial.SinCambios
		for _, e := range parcial.Errores {
			if len(lotes) > 1 {
				e = fmt.Sprintf("lote %d: %s", i+1, e)
			}
			resultado.Errores = append(resultado.Errores, e)
		}
	}
	return resultado, nil
}

func (s *Submitter) enviarLote(ctx context.Context, lote []dto.RegistroPrevia) (*dto.ResultadoLote, error) {
	cuerpo, err := json.Marshal(dto.LoteImportacion{Rows: lote})
	if err != nil {
		return nil, fmt.Errorf("no se pudo serializar el lote: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(cuerpo))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envoltura struct {
		Exito   bool               `json:"exito"`
		Data    *dto.ResultadoLote `json:"data"`
		Mensaje string             `json:"mensaje"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envoltura); err != nil {
		return nil, fmt.Errorf("respuesta ilegible (HTTP %d): %w", resp.StatusCode, err)
	}
	if !envoltura.Exito || envoltura.Data == nil {
		if envoltura.Mensaje == "" {
			envoltura.Mensaje = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("el servidor rechazó el lote: %s", envoltura.Mensaje)
	}
	return envoltura.Data, nil
}

// Particionar divide los registros en lotes de a lo sumo tam filas,
// preservando el orden.
func Particionar(registros []dto.RegistroPrevia, tam int) [][]dto.RegistroPrevia {
	if tam <= 0 {
		tam = TamanoLotePorDefecto
	}
	var lotes [][]dto.RegistroPrevia
	for inicio := 0; inicio < len(registros); inicio += tam {
		fin := inicio + tam
		if fin > len(registros) {
			fin = len(registros)
		}
		lotes = append(lotes, registros[inicio:fin])
	}
	return lotes
}
