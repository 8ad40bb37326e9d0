package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"hotpink-connect/internal/client"
	"hotpink-connect/internal/domain"
)

type cliConfig struct {
	APIURL  string        `env:"CHAT_API_URL" envDefault:"http://localhost:3000"`
	Timeout time.Duration `env:"CHAT_API_TIMEOUT" envDefault:"10s"`
}

type chatAPI interface {
	Send(ctx context.Context, from, to, msg string) (domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	Inbox(ctx context.Context, user string) ([]domain.Message, error)
	Get(ctx context.Context, id string) (domain.Message, error)
	Delete(ctx context.Context, id string) (domain.Message, error)
}

func main() {
	_ = godotenv.Load()

	var cfg cliConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal(err)
	}

	api := client.NewHTTPClient(cfg.APIURL)
	fmt.Printf("===== HotPink Connect (%s) =====\n", cfg.APIURL)
	printHelp(os.Stdout)
	runLoop(context.Background(), bufio.NewReader(os.Stdin), os.Stdout, api, cfg.Timeout)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Comandos:")
	fmt.Fprintln(w, "  send <de> <para> <mensaje...>")
	fmt.Fprintln(w, "  list")
	fmt.Fprintln(w, "  inbox <usuario>")
	fmt.Fprintln(w, "  get <id>")
	fmt.Fprintln(w, "  delete <id>")
	fmt.Fprintln(w, "  help | salir")
}

func runLoop(ctx context.Context, reader *bufio.Reader, w io.Writer, api chatAPI, timeout time.Duration) {
	for {
		fmt.Fprint(w, "> ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			if !runCommand(ctx, w, api, timeout, line) {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// runCommand ejecuta una línea y devuelve false cuando hay que salir.
func runCommand(ctx context.Context, w io.Writer, api chatAPI, timeout time.Duration, line string) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch cmd {
	case "salir", "quit", "exit":
		return false
	case "help":
		printHelp(w)
	case "send":
		if len(args) < 3 {
			fmt.Fprintln(w, "Uso: send <de> <para> <mensaje...>")
			return true
		}
		msg, err := api.Send(ctx, args[0], args[1], strings.Join(args[2:], " "))
		if err != nil {
			printError(w, err)
			return true
		}
		fmt.Fprintf(w, "Enviado: %s\n", msg.ID)
	case "list":
		messages, err := api.List(ctx)
		if err != nil {
			printError(w, err)
			return true
		}
		printMessages(w, messages)
	case "inbox":
		if len(args) != 1 {
			fmt.Fprintln(w, "Uso: inbox <usuario>")
			return true
		}
		messages, err := api.Inbox(ctx, args[0])
		if err != nil {
			printError(w, err)
			return true
		}
		printMessages(w, messages)
	case "get":
		if len(args) != 1 {
			fmt.Fprintln(w, "Uso: get <id>")
			return true
		}
		msg, err := api.Get(ctx, args[0])
		if err != nil {
			printError(w, err)
			return true
		}
		printMessages(w, []domain.Message{msg})
	case "delete":
		if len(args) != 1 {
			fmt.Fprintln(w, "Uso: delete <id>")
			return true
		}
		msg, err := api.Delete(ctx, args[0])
		if err != nil {
			printError(w, err)
			return true
		}
		fmt.Fprintf(w, "Borrado: %s\n", msg.ID)
	default:
		fmt.Fprintln(w, "Comando invalido.")
	}
	return true
}

func printMessages(w io.Writer, messages []domain.Message) {
	if len(messages) == 0 {
		fmt.Fprintln(w, "(sin mensajes)")
		return
	}
	for _, m := range messages {
		fmt.Fprintf(w, "[%s] %s -> %s: %s (%s)\n",
			m.Timestamp.Local().Format("2006-01-02 15:04:05"), m.From, m.To, m.Msg, m.ID)
	}
}

func printError(w io.Writer, err error) {
	if errors.Is(err, client.ErrNotFound) {
		fmt.Fprintln(w, "No encontrado.")
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
