// Package main provides the interactive venture client. It connects to a
// venture server on the loopback interface, prints each server message, and
// forwards one line of input per turn until the server says goodbye.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: venture-client <port>")
	fmt.Fprintln(os.Stderr, "Please include a port number, eg: venture-client 50000")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	port, err := strconv.Atoi(flag.Arg(0))
	if err != nil || port < 1 || port > 65535 {
		fmt.Fprintf(os.Stderr, "invalid port %q\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	conn, err := net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		log.Fatalf("connecting to server: %v", err)
	}
	defer conn.Close()

	stdin := bufio.NewReader(os.Stdin)
	buf := make([]byte, 4096)

	for {
		n, err := conn.Read(buf)
		if err != nil {
			fmt.Println("Connection closed by host.")
			return
		}

		response := string(buf[:n])
		fmt.Println(response)

		// The goodbye message is the session-end marker.
		if strings.Contains(response, "Goodbye!") {
			return
		}

		fmt.Print("> ")
		line, err := stdin.ReadString('\n')
		if err != nil {
			return
		}
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		if _, err := conn.Write([]byte(line)); err != nil {
			fmt.Println("Connection closed by host.")
			return
		}
	}
}
