// Comando importar: lee una planilla de previas (.csv o .xlsx), normaliza
// sus filas y las envía por lotes al endpoint de importación.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/importer"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/spreadsheet"
)

// Cantidad máxima de líneas de error mostradas al operador.
const maxErroresMostrados = 20

func main() {
	var (
		archivo = flag.String("archivo", "", "ruta de la planilla (.csv o .xlsx)")
		url     = flag.String("url", "http://localhost:8080/api/v1/admin/previas/importar", "endpoint de importación")
		token   = flag.String("token", "", "token de acceso (Bearer)")
		lote    = flag.Int("lote", importer.TamanoLotePorDefecto, "filas por solicitud")
	)
	flag.Parse()

	if *archivo == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*archivo)
	if err != nil {
		log.Fatalf("no se pudo abrir %s: %v", *archivo, err)
	}
	defer f.Close()

	matriz, err := spreadsheet.Leer(f, *archivo)
	if err != nil {
		log.Fatalf("no se pudo leer la planilla: %v", err)
	}

	registros := importer.NormalizarFilas(matriz)
	if len(registros) == 0 {
		log.Fatal("la planilla no tiene filas de datos")
	}
	log.Printf("planilla leída: %d filas de datos", len(registros))

	submitter := importer.NewSubmitter(*url, *token, *lote)
	resultado, err := submitter.Enviar(context.Background(), registros)
	if err != nil {
		log.Fatalf("la importación no pudo ejecutarse: %v", err)
	}

	fmt.Printf("enviados:      %d\n", resultado.Enviados)
	fmt.Printf("insertados:    %d\n", resultado.Insertados)
	fmt.Printf("actualizados:  %d\n", resultado.Actualizados)
	fmt.Printf("sin cambios:   %d\n", resultado.SinCambios)
	fmt.Printf("errores:       %d\n", len(resultado.Errores))
	if n := resultado.NoContabilizados(); n > 0 {
		fmt.Printf("sin contabilizar: %d filas\n", n)
	}

	for i, e := range resultado.Errores {
		if i == maxErroresMostrados {
			fmt.Printf("  ... y %d errores más\n", len(resultado.Errores)-maxErroresMostrados)
			break
		}
		fmt.Printf("  %s\n", e)
	}

	switch resultado.Estado() {
	case importer.EstadoExito:
		fmt.Println("importación completada")
	case importer.EstadoConAvisos:
		fmt.Println("importación completada con avisos")
	default:
		fmt.Println("la importación falló")
		os.Exit(1)
	}
}
