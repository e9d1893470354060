package main

import (
	"fmt"
	"os"

	"github.com/cordialsys/xcm/config"
	"github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("usage: ./main <secret-reference>")
		fmt.Println()
		fmt.Println("example: ./main env:XCM_SEED")
		fmt.Println("example: ./main vault:https://vault.example.com,secret/data/xcm/seed")
		return
	}
	sec, err := config.GetSecret(os.Args[1])
	if err != nil {
		logrus.WithError(err).Fatal("could not resolve secret")
	}
	fmt.Println(sec)
}
