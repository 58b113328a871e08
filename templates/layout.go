package templates

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"z3z/constants"
	"z3z/content"
)

type LayoutProps struct {
	Title       string
	CurrentPage string
}

func navLink(href, label, page, current string) g.Node {
	class := "nav-link"
	if page == current {
		class += " active"
	}
	return Li(Class("nav-item"), A(Href(href), Class(class), g.Text(label)))
}

func NavbarComponent(props LayoutProps) g.Node {
	return Header(Class("header"),
		Nav(Class("nav"),
			Div(Class("nav-container"),
				Div(Class("logo"),
					A(Href("/"), H1(Class("logo-text"), g.Text("Z3Z"))),
				),
				Ul(Class("nav-menu"),
					navLink("/", "Início", "home", props.CurrentPage),
					navLink("/poemas", "Poemas", "poemas", props.CurrentPage),
					navLink("/filosofia", "Filosofia", "filosofia", props.CurrentPage),
					navLink("/religiao", "Religião", "religiao", props.CurrentPage),
					navLink("/sobre", "Sobre", "sobre", props.CurrentPage),
				),
			),
		),
	)
}

func FooterComponent() g.Node {
	return Footer(Class("footer"),
		Div(Class("container"),
			Div(Class("footer-content"),
				Div(Class("footer-section"),
					H4(g.Text(constants.APP_NAME)),
					P(g.Text("Um espaço sagrado para a alma")),
				),
				Div(Class("footer-section"),
					H4(g.Text("Categorias")),
					Ul(
						g.Group(categoriesFooterLinks()),
					),
				),
			),
			Div(Class("footer-bottom"),
				P(g.Text("© 2025 Z3Z Blog. Todos os direitos reservados.")),
			),
		),
	)
}

func categoriesFooterLinks() []g.Node {
	var links []g.Node
	for _, coll := range content.Collections {
		links = append(links, Li(A(Href("/"+string(coll)), g.Text(coll.Label()))))
	}
	return links
}

// Layout wraps a public page in the shared chrome.
func Layout(props LayoutProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("pt-BR"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content("Poemas, reflexões filosóficas e insights religiosos no "+constants.APP_NAME+".")),
				Link(Rel("stylesheet"), Href("/assets/css/styles.css")),
				TitleEl(g.Text(props.Title)),
			),
			Body(
				NavbarComponent(props),
				Main(Class("main"),
					g.Group(children),
				),
				FooterComponent(),
			),
		),
	)
}
