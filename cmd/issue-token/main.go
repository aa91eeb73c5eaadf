package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/yourusername/bhp-api/internal/config"
	"github.com/yourusername/bhp-api/pkg/auth"
)

// Печатает подписанный токен для вызова защищенных маршрутов
func main() {
	sub := flag.String("sub", "", "идентификатор пользователя")
	email := flag.String("email", "", "e-mail пользователя")
	roles := flag.String("role", auth.RoleAdministrator, "роли через запятую (Administrator, Customer)")
	flag.Parse()

	if *sub == "" {
		log.Fatal("-sub is required")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Fatal(err)
	}

	var roleList []string
	for _, r := range strings.Split(*roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}

	token, err := jwtService.GenerateToken(*sub, *email, roleList...)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
