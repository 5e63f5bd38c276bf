// Command seed generates a user registry file with bcrypt-hashed passwords.
//
// By default it writes a small built-in set of users. An input file with
// plaintext passwords can be supplied instead:
//
//	seed -i plain_users.json -o users.json -cost 12
//
// The input is a JSON array of objects with "username", "password", "name",
// "email" and "role" fields; ids are generated. The output is the registry
// format read by the server at startup.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-role-registry/internal/logger"
	"github.com/MKhiriev/go-role-registry/models"
)

// plainUser is the seeder's input shape: a user with a plaintext password.
type plainUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// seededUser is the output shape, matching the registry file the server reads.
type seededUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

// defaultUsers is the built-in seed set: one user per visibility tier.
var defaultUsers = []plainUser{
	{Username: "admin", Password: "adminpass", Name: "Administrador", Email: "admin@ejemplo.com", Role: models.RoleAdmin},
	{Username: "super1", Password: "superpass", Name: "Supervisor Uno", Email: "super1@ejemplo.com", Role: models.RoleSupervisor},
	{Username: "usuario1", Password: "userpass", Name: "Usuario Uno", Email: "user1@ejemplo.com", Role: "usuario"},
}

func main() {
	var (
		inputPath  string
		outputPath string
		cost       int
	)
	flag.StringVar(&inputPath, "i", "", "optional JSON file with plaintext users; built-in set is used when empty")
	flag.StringVar(&outputPath, "o", "users.json", "path of the registry file to write")
	flag.IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost used for password hashing")
	flag.Parse()

	log := logger.NewLogger("role-registry-seed")

	users := defaultUsers
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", inputPath).Msg("error reading input file")
		}
		users = nil
		if err := json.Unmarshal(data, &users); err != nil {
			log.Fatal().Err(err).Str("path", inputPath).Msg("error parsing input file")
		}
	}

	seeded := make([]seededUser, 0, len(users))
	for _, user := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), cost)
		if err != nil {
			log.Fatal().Err(err).Str("username", user.Username).Msg("error hashing password")
		}

		seeded = append(seeded, seededUser{
			ID:           uuid.NewString(),
			Username:     user.Username,
			PasswordHash: string(hash),
			Name:         user.Name,
			Email:        user.Email,
			Role:         user.Role,
		})
	}

	data, err := json.MarshalIndent(seeded, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error serialising registry")
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		log.Fatal().Err(err).Str("path", outputPath).Msg("error writing registry file")
	}

	log.Info().Str("path", outputPath).Int("users", len(seeded)).Msg("registry file generated")
}
