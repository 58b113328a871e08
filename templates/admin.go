package templates

import (
	"fmt"
	"strings"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"z3z/constants"
	"z3z/content"
)

// AdminLayout wraps admin pages in the dashboard chrome. adminName is the
// signed-in admin's display name, empty on the login page.
func AdminLayout(title, currentPage, adminName string, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("pt-BR"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Link(Rel("stylesheet"), Href("/assets/css/admin.css")),
				TitleEl(g.Text(title)),
			),
			Body(Class("admin"),
				Header(Class("admin-header"),
					Div(Class("admin-brand"), A(Href("/admin/dashboard"), g.Text(constants.APP_NAME+" Admin"))),
					g.If(adminName != "", adminNav(currentPage, adminName)),
				),
				Main(Class("admin-main"), g.Group(children)),
			),
		),
	)
}

func adminNav(currentPage, adminName string) g.Node {
	var links []g.Node
	links = append(links, adminNavLink("/admin/dashboard", "Dashboard", "dashboard", currentPage))
	for _, coll := range content.Collections {
		links = append(links, adminNavLink("/admin/"+string(coll), coll.Label(), string(coll), currentPage))
	}
	return Nav(Class("admin-nav"),
		Ul(Class("admin-menu"), g.Group(links)),
		Div(Class("admin-user"),
			Span(g.Textf("Olá, %s", adminName)),
			A(Href("/admin/logout"), g.Text("Sair")),
		),
	)
}

func adminNavLink(href, label, page, current string) g.Node {
	class := "admin-link"
	if page == current {
		class += " active"
	}
	return Li(A(Href(href), Class(class), g.Text(label)))
}

func LoginPage(errMsg string) g.Node {
	return AdminLayout("Login - Z3Z Admin", "login", "",
		Div(Class("login-box"),
			H2(g.Text("Área administrativa")),
			g.If(errMsg != "", Div(Class("alert alert-error"), g.Text(errMsg))),
			FormEl(Method("post"), Action("/admin/login"),
				Label(For("username"), g.Text("Usuário")),
				Input(Type("text"), ID("username"), Name("username"), Required(), AutoFocus()),
				Label(For("password"), g.Text("Senha")),
				Input(Type("password"), ID("password"), Name("password"), Required()),
				Button(Type("submit"), g.Text("Entrar")),
			),
		),
	)
}

// DashboardStats feeds the dashboard counters.
type DashboardStats struct {
	PerCollection map[content.Collection]int
	Total         int
	Comments      int
}

func DashboardPage(adminName string, stats DashboardStats) g.Node {
	var cards []g.Node
	for _, coll := range content.Collections {
		cards = append(cards, Div(Class("stat-card"),
			H3(g.Text(coll.Label())),
			P(Class("stat-number"), g.Textf("%d", stats.PerCollection[coll])),
			A(Href("/admin/"+string(coll)), g.Text("Gerenciar")),
		))
	}
	cards = append(cards,
		Div(Class("stat-card"),
			H3(g.Text("Total")),
			P(Class("stat-number"), g.Textf("%d", stats.Total)),
		),
		Div(Class("stat-card"),
			H3(g.Text("Comentários")),
			P(Class("stat-number"), g.Textf("%d", stats.Comments)),
		),
	)
	return AdminLayout("Dashboard - Z3Z Admin", "dashboard", adminName,
		H2(g.Text("Dashboard")),
		Div(Class("stats-grid"), g.Group(cards)),
	)
}

// Flash is the banner derived from the ?success= / ?error= redirect flags.
type Flash struct {
	Message string
	IsError bool
}

func flashBanner(f Flash) g.Node {
	if f.Message == "" {
		return nil
	}
	class := "alert alert-success"
	if f.IsError {
		class = "alert alert-error"
	}
	return Div(Class(class), g.Text(f.Message))
}

func AdminListPage(adminName string, coll content.Collection, items []content.Item, flash Flash) g.Node {
	var rows []g.Node
	for _, it := range items {
		status := "Rascunho"
		if it.Published {
			status = "Publicado"
		}
		rows = append(rows, Tr(
			Td(g.Textf("%d", it.ID)),
			Td(g.Text(it.Title)),
			Td(g.Text(it.Category)),
			Td(g.Text(status)),
			Td(g.Text(it.Date)),
			Td(Class("row-actions"),
				A(Href(fmt.Sprintf("/admin/%s/%d/editar", coll, it.ID)), g.Text("Editar")),
				FormEl(Method("post"), Action(fmt.Sprintf("/admin/%s/%d/excluir", coll, it.ID)), Class("inline-form"),
					Button(Type("submit"), Class("danger"), g.Text("Excluir")),
				),
			),
		))
	}
	return AdminLayout("Gerenciar "+coll.Label()+" - Z3Z Admin", string(coll), adminName,
		H2(g.Textf("Gerenciar %s", coll.Label())),
		flashBanner(flash),
		A(Href(fmt.Sprintf("/admin/%s/novo", coll)), Class("button"), g.Text("Novo")),
		Table(Class("admin-table"),
			THead(Tr(
				Th(g.Text("ID")), Th(g.Text("Título")), Th(g.Text("Categoria")),
				Th(g.Text("Status")), Th(g.Text("Data")), Th(g.Text("Ações")),
			)),
			TBody(g.Group(rows)),
		),
		g.If(len(items) == 0, P(Class("empty-state"), g.Text("Nenhum item cadastrado."))),
	)
}

// AdminFormPage renders both the create and the edit form; item is nil for
// a new entry.
func AdminFormPage(adminName string, coll content.Collection, item *content.Item) g.Node {
	title := "Novo"
	action := fmt.Sprintf("/admin/%s/novo", coll)
	var values content.Item
	if item != nil {
		title = "Editar"
		action = fmt.Sprintf("/admin/%s/%d/editar", coll, item.ID)
		values = *item
	}

	// separator must round-trip through the formatter on resubmit: a blank
	// line between paragraphs, a plain newline between verse lines
	rawContent := strings.Join(values.Content, "\n\n")
	bodyLabel := "Conteúdo (um parágrafo por bloco)"
	if coll.IsVerse() {
		rawContent = strings.Join(values.Content, "\n")
		bodyLabel = "Conteúdo (uma linha por verso, linha em branco separa estrofes)"
	}

	return AdminLayout(title+" - Z3Z Admin", string(coll), adminName,
		H2(g.Textf("%s — %s", title, coll.Label())),
		FormEl(Method("post"), Action(action), Class("admin-form"),
			Label(For("title"), g.Text("Título")),
			Input(Type("text"), ID("title"), Name("title"), Value(values.Title), Required()),

			Label(For("content"), g.Text(bodyLabel)),
			Textarea(ID("content"), Name("content"), Rows("12"), Required(), g.Text(rawContent)),

			Label(For("category"), g.Text("Categoria")),
			Input(Type("text"), ID("category"), Name("category"), Value(values.Category)),

			Label(For("tags"), g.Text("Tags (separadas por vírgula)")),
			Input(Type("text"), ID("tags"), Name("tags"), Value(strings.Join(values.Tags, ", "))),

			Label(For("date"), g.Text("Data (exibição)")),
			Input(Type("text"), ID("date"), Name("date"), Value(values.Date)),

			Label(For("image"), g.Text("Imagem (URL, opcional)")),
			Input(Type("url"), ID("image"), Name("image"), Value(values.Image)),

			Label(Class("checkbox"),
				Input(Type("checkbox"), Name("published"), g.If(values.Published, Checked())),
				g.Text(" Publicado"),
			),

			Button(Type("submit"), g.Text("Salvar")),
			A(Href("/admin/"+string(coll)), Class("button secondary"), g.Text("Cancelar")),
		),
	)
}
