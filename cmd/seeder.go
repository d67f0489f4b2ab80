package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bootesnull/hrportal/internal/auth"
)

var clearData bool

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with baseline data",
	Long:  `Seed the reserved roles, baseline permissions and development users.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"role_permissions", "permissions", "attendances", "leaves", "leave_types", "user_details", "users", "roles"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		// The super admin role must come first so it gets the reserved id 1,
		// the default employee role gets id 2.
		roles := []struct {
			ID   int64
			Name string
		}{
			{1, "Super Admin"},
			{2, "Employee"},
		}

		for _, role := range roles {
			var exists int
			if err := db.Raw("SELECT 1 FROM roles WHERE id = ?", role.ID).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO roles (id, name, status, created_at, updated_at) VALUES (?, ?, 1, now(), now())", role.ID, role.Name).Error; err != nil {
				log.Fatalf("failed to insert role %s: %v", role.Name, err)
			}
			fmt.Println("Seeded role:", role.Name)
		}
		if err := db.Exec("SELECT setval(pg_get_serial_sequence('roles', 'id'), (SELECT MAX(id) FROM roles))").Error; err != nil {
			log.Fatalf("failed to bump roles sequence: %v", err)
		}

		permissions := []string{
			"user-list",
			"user-view",
			"user-edit-details",
			"leave-view-all",
			"leave-approve",
			"attendance-view",
		}

		for _, name := range permissions {
			var pid int64
			if err := db.Raw("SELECT id FROM permissions WHERE permission_name = ?", name).Row().Scan(&pid); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO permissions (permission_name, status, created_at, updated_at) VALUES (?, 1, now(), now())", name).Error; err != nil {
				log.Fatalf("failed to insert permission %s: %v", name, err)
			}
			fmt.Println("Seeded permission:", name)
		}

		// Employees can look at their own profile out of the box.
		employeeGrants := []string{"user-view"}
		for _, name := range employeeGrants {
			var pid int64
			if err := db.Raw("SELECT id FROM permissions WHERE permission_name = ?", name).Row().Scan(&pid); err != nil {
				log.Fatalf("permission not found after insert %s: %v", name, err)
			}

			var exists int
			if err := db.Raw("SELECT 1 FROM role_permissions WHERE role_id = 2 AND permission_id = ?", pid).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO role_permissions (role_id, permission_id, status, created_at, updated_at) VALUES (2, ?, 1, now(), now())", pid).Error; err != nil {
				log.Fatalf("failed to grant permission %s to employee role: %v", name, err)
			}
		}

		password := "password"
		hash, err := auth.HashPassword(password, cfg.Security.BCryptCost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		users := []struct {
			Email  string
			Name   string
			RoleID int64
		}{
			{"admin@hrportal.dev", "Portal Admin", 1},
			{"employee@hrportal.dev", "First Employee", 2},
		}

		for _, u := range users {
			var exists int
			if err := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row().Scan(&exists); err == nil {
				fmt.Println("user already exists:", u.Email)
				continue
			}
			if err := db.Exec("INSERT INTO users (email, name, password_hash, role_id, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())",
				u.Email, u.Name, hash, u.RoleID).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Println("Seeded user:", u.Email)
		}

		leaveTypes := []string{"Casual Leave", "Sick Leave", "Earned Leave"}
		for _, name := range leaveTypes {
			var exists int
			if err := db.Raw("SELECT 1 FROM leave_types WHERE name = ?", name).Row().Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec("INSERT INTO leave_types (name, status, created_at, updated_at) VALUES (?, 1, now(), now())", name).Error; err != nil {
				log.Fatalf("failed to insert leave type %s: %v", name, err)
			}
			fmt.Println("Seeded leave type:", name)
		}

		fmt.Println("Database seeded successfully")
	},
}
