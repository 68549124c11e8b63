// Command storefront-chat runs the pre-order conversation against a running
// storefront server from the terminal. It is a development aid mirroring the
// web widget.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"

	"github.com/truethread/storefront/internal/chatflow"
	"github.com/truethread/storefront/internal/intake"
)

var (
	server     = flag.String("server", "http://127.0.0.1:1816", "storefront server base url")
	adminPhone = flag.String("admin-phone", "", "WhatsApp number for the share link, e.g. 919876543210")
)

// httpSubmitter posts the finished request to the live server instead of
// writing to the store directly.
type httpSubmitter struct {
	baseURL string
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (s *httpSubmitter) SubmitPreOrderRequest(ctx context.Context, r intake.PreOrderRequest) (string, error) {
	var (
		code int
		resp submitResponse
	)
	err := gout.POST(s.baseURL + "/pre-order-request").
		WithContext(ctx).
		SetJSON(r).
		Code(&code).
		BindJSON(&resp).
		Do()
	if err != nil {
		return "", errors.Wrap(err, "submit pre-order request")
	}
	if code != 200 || !resp.Success {
		return "", errors.Errorf("server rejected request: %s", resp.Message)
	}
	return resp.ID, nil
}

func render(r chatflow.Reply) {
	for _, msg := range r.Messages {
		fmt.Println()
		fmt.Println(msg)
	}
	if r.ShareURL != "" {
		fmt.Println()
		fmt.Println("Share on WhatsApp:", r.ShareURL)
	}
}

func main() {
	flag.Parse()

	machine := chatflow.NewMachine(&httpSubmitter{baseURL: *server}, *adminPhone)
	render(machine.Start())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		reply, err := machine.Advance(context.Background(), input)
		if err != nil && !errors.Is(err, chatflow.ErrNotAwaitingInput) {
			fmt.Println("error:", err)
		}
		render(reply)
		if reply.Done {
			return
		}
	}
}
