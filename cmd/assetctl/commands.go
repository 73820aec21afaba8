package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/skybi/asset-manager/internal/api"
	"github.com/skybi/asset-manager/internal/app"
	"github.com/skybi/asset-manager/internal/csvexport"
	"golang.org/x/sync/errgroup"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

var errNotLoggedIn = errors.New("not logged in")

// exporters holds the functions fetching the records of every exportable entity
var exporters = map[string]func(ctx context.Context, client *api.Client) (any, error){
	"assets": func(ctx context.Context, client *api.Client) (any, error) {
		return client.GetAssets(ctx)
	},
	"persons": func(ctx context.Context, client *api.Client) (any, error) {
		return client.GetPersons(ctx)
	},
	"asset-types": func(ctx context.Context, client *api.Client) (any, error) {
		return client.GetAssetTypes(ctx)
	},
	"assets-with-assignments": func(ctx context.Context, client *api.Client) (any, error) {
		return client.GetAssetsWithAssignments(ctx)
	},
}

var exportEntities = []string{"assets", "persons", "asset-types", "assets-with-assignments"}

func exportEntityList() string {
	return strings.Join(exportEntities, "|")
}

func run(ctx context.Context, instance *app.App, command string, args []string) error {
	switch command {
	case "login":
		return login(ctx, instance, args)
	case "logout":
		instance.Logout(ctx)
		log.Info().Msg("logged out")
		return nil
	case "whoami":
		return whoami(ctx, instance)
	case "search-assets":
		return searchAssets(ctx, instance, args)
	case "search-persons":
		return searchPersons(ctx, instance, args)
	case "export":
		if len(args) != 1 {
			return errUsage
		}
		return export(ctx, instance, args[0], time.Now())
	case "export-all":
		return exportAll(ctx, instance, time.Now())
	case "configure":
		return configure(ctx, instance, args)
	default:
		return errUsage
	}
}

func login(ctx context.Context, instance *app.App, args []string) error {
	flags := flag.NewFlagSet("login", flag.ContinueOnError)
	username := flags.String("username", "", "the name of the user to log in as")
	password := flags.String("password", os.Getenv("AM_PASSWORD"), "the password of the user (defaults to $AM_PASSWORD)")
	remember := flags.Bool("remember", false, "request a long-lived token")
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	if *username == "" || *password == "" {
		return errUsage
	}

	user, err := instance.Login(ctx, *username, *password, *remember)
	if err != nil {
		return err
	}
	if user == nil {
		return &api.RequestError{Status: http.StatusOK, Message: api.GenericErrorMessage}
	}
	fmt.Printf("logged in as %s\n", user.Username)
	return nil
}

func whoami(ctx context.Context, instance *app.App) error {
	if !instance.Auth.Session().IsAuthenticated {
		return errNotLoggedIn
	}
	user, err := instance.API().Me(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return &api.RequestError{Status: http.StatusOK, Message: api.GenericErrorMessage}
	}
	instance.Auth.UpdateUser(ctx, user)
	fmt.Printf("%s <%s>\n", user.Username, user.Email)
	return nil
}

func searchAssets(ctx context.Context, instance *app.App, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	assets, err := instance.API().SearchAssets(ctx, args[0])
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tTYPE\tSERIAL NUMBER")
	for _, asset := range assets {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", asset.ID, asset.Name, asset.AssetTypeName, asset.SerialNumber)
	}
	return writer.Flush()
}

func searchPersons(ctx context.Context, instance *app.App, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	persons, err := instance.API().SearchPersons(ctx, args[0])
	if err != nil {
		return err
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tEMAIL\tPHONE")
	for _, person := range persons {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", person.ID, person.Name, person.Email, person.Phone)
	}
	return writer.Flush()
}

func export(ctx context.Context, instance *app.App, entity string, now time.Time) error {
	fetch, ok := exporters[entity]
	if !ok {
		return errUsage
	}
	records, err := fetch(ctx, instance.API())
	if err != nil {
		return err
	}
	return writeExport(entity, records, now)
}

func exportAll(ctx context.Context, instance *app.App, now time.Time) error {
	client := instance.API()
	group, ctx := errgroup.WithContext(ctx)
	for _, entity := range exportEntities {
		fetch := exporters[entity]
		group.Go(func() error {
			records, err := fetch(ctx, client)
			if err != nil {
				return fmt.Errorf("export %s: %w", entity, err)
			}
			return writeExport(entity, records, now)
		})
	}
	return group.Wait()
}

func writeExport(entity string, records any, now time.Time) error {
	rows, err := csvexport.FromValues(records)
	if err != nil {
		return err
	}
	path, err := csvexport.ExportFile(".", entity, rows, now)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Printf("%s: nothing to export\n", entity)
		return nil
	}
	fmt.Printf("%s: exported %d rows to %s\n", entity, len(rows), path)
	return nil
}

func configure(ctx context.Context, instance *app.App, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errUsage
	}
	if instance.Bootstrap == nil {
		return errors.New("configure is only available in desktop mode (AM_DESKTOP=true)")
	}
	token := ""
	if len(args) == 2 {
		token = args[1]
	}
	if err := instance.Bootstrap.SaveConfig(ctx, args[0], token); err != nil {
		return err
	}
	fmt.Printf("the API is now expected at %s\n", args[0])
	return nil
}
