package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/akashipov/brcode/internal/arguments"
	"github.com/akashipov/brcode/internal/storage/charge"
	"github.com/nats-io/nats.go"
)

func main() {
	p := flag.String("f", "cmd/publisher/charge.json", "Path to example of charge request in json format")
	u := flag.String("n", nats.DefaultURL, "Nats url")
	s := flag.String("subject", arguments.DefaultSubject, "Nats subject")
	every := flag.Duration("every", time.Second, "Pause between messages")
	count := flag.Int("count", 0, "Number of messages, 0 publishes until interrupted")
	flag.Parse()

	sc, err := nats.Connect(*u)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	defer sc.Close()
	data, err := os.ReadFile(*p)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	var req charge.ChargeRequest
	err = json.Unmarshal(data, &req)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	prefix := req.TransactionID
	if prefix == "" {
		prefix = "GIFT"
	}
	for i := 0; *count == 0 || i < *count; i++ {
		req.TransactionID = prefix + strconv.Itoa(i)
		d, err := json.Marshal(req)
		if err != nil {
			fmt.Println("Problem with json data: " + err.Error())
			return
		}
		msg, err := sc.Request(*s, d, 2*time.Second)
		if err != nil {
			fmt.Println(err.Error())
		} else {
			fmt.Println(string(msg.Data))
		}
		time.Sleep(*every)
	}
}
