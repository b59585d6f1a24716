package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/carga/internal/cli"
	"github.com/alexanderramin/carga/internal/config"
	"github.com/alexanderramin/carga/internal/db"
	"github.com/alexanderramin/carga/internal/repository"
	"github.com/alexanderramin/carga/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	departmentRepo := repository.NewSQLiteDepartmentRepo(database)
	professorRepo := repository.NewSQLiteProfessorRepo(database)
	courseRepo := repository.NewSQLiteCourseRepo(database)
	sectionRepo := repository.NewSQLiteSectionRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	workloadRepo := repository.NewSQLiteWorkloadRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel)
	}

	app := &cli.App{
		Departments: service.NewDepartmentService(departmentRepo),
		Professors:  service.NewProfessorService(professorRepo),
		Courses:     service.NewCourseService(courseRepo, departmentRepo),
		Sections:    service.NewSectionService(sectionRepo, courseRepo, uow),
		Sessions:    service.NewSessionService(sessionRepo, uow),
		Workload:    service.NewWorkloadService(workloadRepo, departmentRepo, cfg.Policy(), observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
