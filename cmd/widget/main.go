package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/appointmentstore"
	"github.com/m04kA/SMC-SalonService/internal/widget"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// terminalNotifier печатает транзиентные сообщения пользователю
type terminalNotifier struct{}

func (terminalNotifier) Notify(message string) {
	fmt.Printf(">> %s\n", message)
}

// terminalRenderer рисует состояние сессии: выбранный день и его записи
type terminalRenderer struct{}

func (terminalRenderer) Render(view widget.View) {
	fmt.Printf("\n=== %s", view.SelectedDate.Format(domain.DateFormat))
	if view.SelectedStylist != nil {
		fmt.Printf(" · %s", *view.SelectedStylist)
	}
	fmt.Println(" ===")

	if len(view.Appointments) == 0 {
		fmt.Println("(sin citas)")
		return
	}

	for _, appt := range view.Appointments {
		fmt.Printf("%s  %-20s %-12s %-12s %s  [%s]\n",
			appt.StartTime, appt.ClientName, appt.Phone, appt.Stylist, appt.Status, appt.ID)
	}
}

func printHelp() {
	fmt.Println(`Comandos:
  dia YYYY-MM-DD                      seleccionar fecha
  filtro <peluquero> | filtro -       filtrar por peluquero / quitar filtro
  reservar HH:MM <nombre> ; <telefono> [; <peluquero>]
  editar <id> <nombre> ; <telefono>   corregir nombre/teléfono
  borrar <id>                         eliminar cita
  salir`)
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking widget, store=%s", cfg.Store.URL)

	client := appointmentstore.NewClient(
		cfg.Store.URL,
		time.Duration(cfg.Store.Timeout)*time.Second,
		log,
	)

	today := time.Now().Truncate(24 * time.Hour)
	ctrl := widget.NewController(client, terminalNotifier{}, terminalRenderer{}, log, today)

	ctx := context.Background()
	ctrl.Start(ctx)
	printHelp()

	// Однопоточный событийный цикл: интенты приходят по одному со stdin
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		switch cmd {
		case "dia":
			date, err := time.Parse(domain.DateFormat, strings.TrimSpace(rest))
			if err != nil {
				fmt.Println(">> fecha no válida, se espera YYYY-MM-DD")
				continue
			}
			ctrl.SelectDate(ctx, date)

		case "filtro":
			name := strings.TrimSpace(rest)
			if name == "" || name == "-" {
				ctrl.SelectStylist(ctx, nil)
			} else {
				ctrl.SelectStylist(ctx, &name)
			}

		case "reservar":
			slot, fields, ok := parseBookingArgs(rest)
			if !ok {
				fmt.Println(">> uso: reservar HH:MM <nombre> ; <telefono> [; <peluquero>]")
				continue
			}
			draft := widget.BookingDraft{
				Date:       ctrl.View().SelectedDate,
				StartTime:  slot,
				ClientName: fields[0],
				Phone:      fields[1],
			}
			if len(fields) > 2 && fields[2] != "" {
				draft.Stylist = ptr.Ptr(fields[2])
			}
			// Ошибки уже показаны через notifier
			_ = ctrl.SubmitBooking(ctx, draft)

		case "editar":
			id, args, _ := strings.Cut(strings.TrimSpace(rest), " ")
			fields := splitFields(args)
			if id == "" || len(fields) < 2 {
				fmt.Println(">> uso: editar <id> <nombre> ; <telefono>")
				continue
			}
			_ = ctrl.EditBooking(ctx, id, widget.BookingPatch{
				ClientName: ptr.Ptr(fields[0]),
				Phone:      ptr.Ptr(fields[1]),
			})

		case "borrar":
			id := strings.TrimSpace(rest)
			if id == "" {
				fmt.Println(">> uso: borrar <id>")
				continue
			}
			_ = ctrl.DeleteBooking(ctx, id)

		case "salir", "exit", "quit":
			log.Info("Widget session ended")
			return

		default:
			printHelp()
		}
	}
}

// parseBookingArgs разбирает "HH:MM nombre ; telefono [; peluquero]"
func parseBookingArgs(rest string) (slot string, fields []string, ok bool) {
	slot, args, found := strings.Cut(strings.TrimSpace(rest), " ")
	if !found {
		return "", nil, false
	}

	fields = splitFields(args)
	if len(fields) < 2 {
		return "", nil, false
	}
	return slot, fields, true
}

// splitFields режет аргументы по ";" с обрезкой пробелов
func splitFields(args string) []string {
	parts := strings.Split(args, ";")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, strings.TrimSpace(p))
	}
	return fields
}
