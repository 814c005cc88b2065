// Command seed applies the database schema and loads a small demo data set:
// a manager, three students, two courses, and three enrollments. Every seeded
// account uses the password "123456".
package main

import (
	"context"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/eduplatform/courses-api/internal/infrastructure/config"
	"github.com/eduplatform/courses-api/internal/infrastructure/db/postgres"
	"github.com/eduplatform/courses-api/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	name       text NOT NULL,
	email      text NOT NULL UNIQUE,
	password   text NOT NULL,
	role       text NOT NULL DEFAULT 'student' CHECK (role IN ('student', 'manager')),
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS courses (
	id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	title       text NOT NULL UNIQUE,
	description text
);

CREATE TABLE IF NOT EXISTS enrollments (
	id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id    uuid NOT NULL REFERENCES users (id) ON DELETE CASCADE,
	course_id  uuid NOT NULL REFERENCES courses (id) ON DELETE CASCADE,
	created_at timestamptz NOT NULL DEFAULT now()
);
`

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Database.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}
	log.Info().Msg("schema applied")

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash seed password")
	}

	users := []struct {
		name, email, role string
	}{
		{"Helena Prado", "helena.prado@example.com", "manager"},
		{"Rafael Souza", "rafael.souza@example.com", "student"},
		{"Beatriz Lima", "beatriz.lima@example.com", "student"},
		{"Diego Martins", "diego.martins@example.com", "student"},
	}

	userIDs := make([]string, 0, len(users))
	for _, u := range users {
		var id string
		err := pool.QueryRow(ctx, `
			INSERT INTO users (name, email, password, role)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, u.name, u.email, string(hash), u.role).Scan(&id)
		if err != nil {
			log.Fatal().Err(err).Str("email", u.email).Msg("failed to seed user")
		}
		userIDs = append(userIDs, id)
	}

	courses := []struct {
		title, description string
	}{
		{"Docker fundamentals", "Containers, images and registries from scratch."},
		{"Kubernetes in practice", "Deployments, services and day-two operations."},
	}

	courseIDs := make([]string, 0, len(courses))
	for _, c := range courses {
		var id string
		err := pool.QueryRow(ctx, `
			INSERT INTO courses (title, description)
			VALUES ($1, $2)
			ON CONFLICT (title) DO UPDATE SET description = EXCLUDED.description
			RETURNING id
		`, c.title, c.description).Scan(&id)
		if err != nil {
			log.Fatal().Err(err).Str("title", c.title).Msg("failed to seed course")
		}
		courseIDs = append(courseIDs, id)
	}

	// Students 1 and 2 on the first course, student 3 on the second.
	enrollments := [][2]string{
		{userIDs[1], courseIDs[0]},
		{userIDs[2], courseIDs[0]},
		{userIDs[3], courseIDs[1]},
	}
	for _, e := range enrollments {
		if _, err := pool.Exec(ctx, `
			INSERT INTO enrollments (user_id, course_id)
			VALUES ($1, $2)
		`, e[0], e[1]); err != nil {
			log.Fatal().Err(err).Msg("failed to seed enrollment")
		}
	}

	log.Info().
		Int("users", len(userIDs)).
		Int("courses", len(courseIDs)).
		Int("enrollments", len(enrollments)).
		Msg("seed completed")
}
