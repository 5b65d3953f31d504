// Command matchctl is an interactive line-oriented REPL driving a
// single-symbol engine.Book through an ingest.Ingestor, the external
// collaborator shape spec section 6 describes. It is grounded on the
// original engine's ingestor_cli: a prompt loop that sends commands on
// one goroutine while a second goroutine prints the resulting trade
// stream.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"match-engine/src/engine"
	"match-engine/src/ingest"
)

func main() {
	book := engine.NewBook()
	ig := ingest.StartWithBook(book, ingest.DefaultOptions())

	fmt.Println("Commands: limit buy|sell <px> <qty> | market buy|sell <qty> | cancel <id> | book | quit")

	go printTrades(ig)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			ig.Close()
			return

		case "limit":
			if len(fields) != 4 {
				fmt.Println("usage: limit buy|sell <price> <qty>")
				continue
			}
			side, ok := parseSide(fields[1])
			if !ok {
				fmt.Println("side must be buy|sell")
				continue
			}
			price, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				fmt.Println("invalid price")
				continue
			}
			qty, err := strconv.ParseUint(fields[3], 10, 64)
			if err != nil {
				fmt.Println("invalid qty")
				continue
			}
			ig.TxCmd <- ingest.LimitCommand(side, engine.Price(price), engine.Qty(qty))

		case "market":
			if len(fields) != 3 {
				fmt.Println("usage: market buy|sell <qty>")
				continue
			}
			side, ok := parseSide(fields[1])
			if !ok {
				fmt.Println("side must be buy|sell")
				continue
			}
			qty, err := strconv.ParseUint(fields[2], 10, 64)
			if err != nil {
				fmt.Println("invalid qty")
				continue
			}
			ig.TxCmd <- ingest.MarketCommand(side, engine.Qty(qty))

		case "cancel":
			if len(fields) != 2 {
				fmt.Println("usage: cancel <id>")
				continue
			}
			id, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				fmt.Println("invalid id")
				continue
			}
			ig.TxCmd <- ingest.CancelCommand(engine.OrderID(id))

		case "book":
			bids, asks := ig.TopN(5)
			fmt.Println("bids:", bids)
			fmt.Println("asks:", asks)

		default:
			fmt.Println("unknown command")
		}
	}
}

func parseSide(s string) (engine.Side, bool) {
	switch s {
	case "buy":
		return engine.Buy, true
	case "sell":
		return engine.Sell, true
	default:
		return 0, false
	}
}

func printTrades(ig *ingest.Ingestor) {
	for t := range ig.RxTrade {
		fmt.Printf("trade taker=%d maker=%d px=%d qty=%d\n", t.TakerID, t.MakerID, t.Price, t.Qty)
	}
}
