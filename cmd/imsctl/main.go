// Command imsctl is a terminal client for the inventory server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/stocklane/inventory-system/internal/client/api"
	"github.com/stocklane/inventory-system/internal/client/config"
	"github.com/stocklane/inventory-system/internal/client/menu"
	"github.com/stocklane/inventory-system/internal/client/session"
	"github.com/stocklane/inventory-system/internal/client/tokenstore"
	"github.com/stocklane/inventory-system/internal/core/domain"
)

func usage() {
	fmt.Fprintf(os.Stderr, `imsctl

Usage:
  imsctl [-api URL] <cmd> [args]

Commands:
  register      -name <name> -email <email> -password <pw>
  login         -email <email> -password <pw>      (saves token)
  logout
  whoami
  menu

  overview
  items
  items-add     -name -sku -category -quantity -price -supplier [-desc]
  items-rm      -id <id>
  entities
  entities-add  -type <Buyer|Supplier> -name -email -business -contact -address
  entities-rm   -id <id>
  sales
  sales-add     -item -buyer -supplier -date <2006-01-02> -price -amount [-category]
  sales-rm      -id <id>

  users
  role          -id <id> -role <admin|employee|user>   (admin only)
  user-rm       -id <id>                               (admin only)

  profile
  profile-set   -name <name> -email <email>
  passwd        -old <pw> -new <pw>
`)
	os.Exit(2)
}

func main() {
	cfg := config.Load()

	apiURL := flag.String("api", cfg.APIURL, "server base URL")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tokens := tokenstore.New(cfg.ConfigDir)
	client := api.New(*apiURL, tokens)
	sess := session.New(client, tokens)

	switch cmd {

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)
		if *name == "" || *email == "" || *password == "" {
			fmt.Fprintln(os.Stderr, "need -name, -email and -password")
			os.Exit(1)
		}
		snap, err := sess.Register(ctx, *name, *email, *password)
		if err != nil {
			fail(err)
		}
		printSession(snap)

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "email")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)
		if *email == "" || *password == "" {
			fmt.Fprintln(os.Stderr, "need -email and -password")
			os.Exit(1)
		}
		snap, err := sess.Login(ctx, *email, *password)
		if err != nil {
			fail(err)
		}
		printSession(snap)

	case "logout":
		sess.Logout()
		fmt.Println("logged out")

	case "whoami":
		snap, err := sess.Resolve(ctx)
		if err != nil {
			fail(err)
		}
		printSession(snap)

	case "menu":
		snap := mustAuth(ctx, sess)
		for _, e := range menu.Visible(snap.User) {
			fmt.Printf("%-22s imsctl %s\n", e.Name, e.Command)
		}

	case "overview":
		mustAuth(ctx, sess)
		out, err := client.Overview(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "items":
		mustAuth(ctx, sess)
		out, err := client.Items(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "items-add":
		fs := flag.NewFlagSet("items-add", flag.ExitOnError)
		name := fs.String("name", "", "item name")
		sku := fs.String("sku", "", "SKU")
		category := fs.String("category", "", "category")
		quantity := fs.Int("quantity", 0, "quantity in stock")
		price := fs.Float64("price", 0, "unit price")
		supplier := fs.String("supplier", "", "supplier entity id")
		desc := fs.String("desc", "", "description")
		_ = fs.Parse(args)
		if *name == "" || *sku == "" || *category == "" || *supplier == "" {
			fmt.Fprintln(os.Stderr, "need -name, -sku, -category and -supplier")
			os.Exit(1)
		}
		mustAuth(ctx, sess)
		out, err := client.CreateItem(ctx, map[string]any{
			"name":        *name,
			"sku":         *sku,
			"category":    *category,
			"quantity":    *quantity,
			"price":       *price,
			"supplier":    *supplier,
			"description": *desc,
		})
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "items-rm":
		id := requireID(args)
		mustAuth(ctx, sess)
		if err := client.DeleteItem(ctx, id); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "entities":
		mustAuth(ctx, sess)
		out, err := client.Entities(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "entities-add":
		fs := flag.NewFlagSet("entities-add", flag.ExitOnError)
		typ := fs.String("type", "", "Buyer or Supplier")
		name := fs.String("name", "", "contact name")
		email := fs.String("email", "", "email")
		business := fs.String("business", "", "business name")
		contact := fs.String("contact", "", "phone")
		address := fs.String("address", "", "address")
		_ = fs.Parse(args)
		if *typ == "" || *name == "" {
			fmt.Fprintln(os.Stderr, "need -type and -name")
			os.Exit(1)
		}
		mustAuth(ctx, sess)
		out, err := client.CreateEntity(ctx, map[string]any{
			"type":     *typ,
			"name":     *name,
			"email":    *email,
			"business": *business,
			"contact":  *contact,
			"address":  *address,
		})
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "entities-rm":
		id := requireID(args)
		mustAuth(ctx, sess)
		if err := client.DeleteEntity(ctx, id); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "sales":
		mustAuth(ctx, sess)
		out, err := client.Sales(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "sales-add":
		fs := flag.NewFlagSet("sales-add", flag.ExitOnError)
		item := fs.String("item", "", "item id")
		buyer := fs.String("buyer", "", "buyer entity id")
		supplier := fs.String("supplier", "", "supplier entity id")
		date := fs.String("date", "", "sale date (2006-01-02)")
		price := fs.Float64("price", 0, "total price")
		amount := fs.Int("amount", 0, "units sold")
		category := fs.String("category", "", "category override")
		_ = fs.Parse(args)
		if *item == "" || *buyer == "" || *date == "" || *amount <= 0 {
			fmt.Fprintln(os.Stderr, "need -item, -buyer, -date and a positive -amount")
			os.Exit(1)
		}
		mustAuth(ctx, sess)
		out, err := client.CreateSale(ctx, map[string]any{
			"itemName":   *item,
			"soldTo":     *buyer,
			"supplier":   *supplier,
			"soldOn":     *date,
			"price":      *price,
			"amountSold": *amount,
			"category":   *category,
		})
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "sales-rm":
		id := requireID(args)
		mustAuth(ctx, sess)
		if err := client.DeleteSale(ctx, id); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "users":
		mustAuth(ctx, sess)
		out, err := client.Users(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "role":
		fs := flag.NewFlagSet("role", flag.ExitOnError)
		id := fs.String("id", "", "user id")
		role := fs.String("role", "", "new role")
		_ = fs.Parse(args)
		if *id == "" || !domain.ValidRole(*role) {
			fmt.Fprintln(os.Stderr, "need -id and -role (admin, employee or user)")
			os.Exit(1)
		}
		snap := mustAuth(ctx, sess)
		if !menu.CanChangeRoles(snap.User) {
			fmt.Fprintln(os.Stderr, "role changes require the admin role")
			os.Exit(1)
		}
		out, err := client.ChangeRole(ctx, *id, *role)
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "user-rm":
		id := requireID(args)
		snap := mustAuth(ctx, sess)
		if !menu.CanChangeRoles(snap.User) {
			fmt.Fprintln(os.Stderr, "user deletion requires the admin role")
			os.Exit(1)
		}
		if err := client.DeleteUser(ctx, id); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "profile":
		mustAuth(ctx, sess)
		out, err := client.Profile(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "profile-set":
		fs := flag.NewFlagSet("profile-set", flag.ExitOnError)
		name := fs.String("name", "", "full name")
		email := fs.String("email", "", "email")
		_ = fs.Parse(args)
		if *name == "" || *email == "" {
			fmt.Fprintln(os.Stderr, "need -name and -email")
			os.Exit(1)
		}
		mustAuth(ctx, sess)
		out, err := client.UpdateProfile(ctx, *name, *email)
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "passwd":
		fs := flag.NewFlagSet("passwd", flag.ExitOnError)
		oldPw := fs.String("old", "", "current password")
		newPw := fs.String("new", "", "new password")
		_ = fs.Parse(args)
		if *oldPw == "" || *newPw == "" {
			fmt.Fprintln(os.Stderr, "need -old and -new")
			os.Exit(1)
		}
		mustAuth(ctx, sess)
		if err := client.ChangePassword(ctx, *oldPw, *newPw); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	default:
		usage()
	}
}

// mustAuth resolves the saved token into a session and exits when the
// caller is not an authenticated operator.
func mustAuth(ctx context.Context, sess *session.Session) session.Snapshot {
	snap, err := sess.Resolve(ctx)
	if err != nil && !api.IsUnauthorized(err) {
		fail(err)
	}
	if !snap.Authenticated {
		if snap.User != nil {
			fmt.Fprintf(os.Stderr, "account %s has role %q and no panel access\n", snap.User.Email, snap.User.Role)
		} else {
			fmt.Fprintln(os.Stderr, "not authenticated; run 'imsctl login -email ... -password ...'")
		}
		os.Exit(1)
	}
	return snap
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func requireID(args []string) string {
	fs := flag.NewFlagSet("id", flag.ExitOnError)
	id := fs.String("id", "", "resource id")
	_ = fs.Parse(args)
	if *id == "" {
		fmt.Fprintln(os.Stderr, "need -id")
		os.Exit(1)
	}
	return *id
}

func printSession(snap session.Snapshot) {
	if snap.User == nil {
		fmt.Println("not signed in")
		return
	}
	status := "no panel access"
	if snap.Authenticated {
		status = "authenticated"
	}
	fmt.Printf("%s <%s> role=%s (%s)\n", snap.User.Name, snap.User.Email, snap.User.Role, status)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
