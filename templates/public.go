package templates

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"z3z/constants"
	"z3z/content"
)

// Featured pairs a collection with its most recent published item for the
// home page cards.
type Featured struct {
	Collection content.Collection
	Item       content.Item
}

func HomePage(featured []Featured) g.Node {
	return Layout(LayoutProps{Title: constants.APP_NAME + " - Um espaço sagrado para a alma", CurrentPage: "home"},
		Div(Class("welcome-banner"),
			Div(Class("container"),
				H2(Class("welcome-text"), g.Text("Bem-vindos ao Z3Z")),
				P(Class("welcome-subtitle"), g.Text("Um espaço sagrado para a alma, onde poesia, filosofia e espiritualidade se encontram")),
			),
		),
		Div(Class("hero"),
			Div(Class("hero-content"),
				BlockQuote(g.Text("\"A verdadeira sabedoria está em reconhecer a própria ignorância.\"")),
				P(Class("cite"), g.Text("— Sócrates")),
			),
		),
		Div(Class("featured-posts"),
			Div(Class("container"),
				H3(Class("section-title"), g.Text("Destaques Recentes")),
				Div(Class("posts-grid"), g.Group(featuredCards(featured))),
			),
		),
	)
}

func featuredCards(featured []Featured) []g.Node {
	var cards []g.Node
	for _, f := range featured {
		cards = append(cards, Article(Class("post-card"),
			Div(Class("post-category "+string(f.Collection)), g.Text(f.Collection.Label())),
			H4(Class("post-title"), g.Text(f.Item.Title)),
			P(Class("post-excerpt"), g.Text(f.Item.Excerpt())),
			Div(Class("post-meta"), Span(Class("post-date"), g.Text(f.Item.Date))),
			A(Href(fmt.Sprintf("/%s/%d", f.Collection, f.Item.ID)), Class("read-more"), g.Text("Ler mais")),
		))
	}
	return cards
}

func ListPage(coll content.Collection, items []content.Item) g.Node {
	return Layout(LayoutProps{Title: coll.Label() + " - " + constants.APP_NAME, CurrentPage: string(coll)},
		Div(Class("container"),
			H2(Class("section-title"), g.Text(coll.Label())),
			Div(Class("posts-grid"), g.Group(listCards(coll, items))),
			g.If(len(items) == 0,
				P(Class("empty-state"), g.Text("Nenhuma publicação ainda.")),
			),
		),
	)
}

func listCards(coll content.Collection, items []content.Item) []g.Node {
	var cards []g.Node
	for _, it := range items {
		cards = append(cards, Article(Class("post-card"),
			H4(Class("post-title"), A(Href(fmt.Sprintf("/%s/%d", coll, it.ID)), g.Text(it.Title))),
			P(Class("post-excerpt"), g.Text(it.Excerpt())),
			Div(Class("post-meta"),
				Span(Class("post-date"), g.Text(it.Date)),
				g.If(it.Category != "", Span(Class("post-tag"), g.Text(it.Category))),
			),
		))
	}
	return cards
}

func DetailPage(coll content.Collection, it content.Item) g.Node {
	contentClass := "article-content"
	if coll.IsVerse() {
		contentClass = "poem-content"
	}
	return Layout(LayoutProps{Title: it.Title + " - " + constants.APP_NAME, CurrentPage: string(coll)},
		Div(Class("container"),
			Article(Class("single-post"),
				H2(Class("post-title"), g.Text(it.Title)),
				Div(Class("post-meta"),
					Span(Class("post-date"), g.Text(it.Date)),
					g.If(it.Author != "", Span(Class("post-author"), g.Text(it.Author))),
				),
				g.If(it.Image != "", Img(Src(it.Image), Alt(it.Title), Class("post-image"))),
				Div(Class(contentClass), g.Group(contentBlocks(coll, it))),
				Div(Class("post-tags"), g.Group(tagNodes(it.Tags))),
			),
			commentsSection(coll, it),
		),
	)
}

func contentBlocks(coll content.Collection, it content.Item) []g.Node {
	var blocks []g.Node
	for _, block := range it.Content {
		if coll.IsVerse() {
			if block == "" {
				blocks = append(blocks, Div(Class("stanza-break")))
			} else {
				blocks = append(blocks, P(Class("verse"), g.Text(block)))
			}
			continue
		}
		blocks = append(blocks, P(g.Text(block)))
	}
	return blocks
}

func tagNodes(tags []string) []g.Node {
	var nodes []g.Node
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		nodes = append(nodes, Span(Class("tag"), g.Text(tag)))
	}
	return nodes
}

// commentsSection renders the comment list container and submission form;
// /assets/js/comments.js fetches and posts against the comments API.
func commentsSection(coll content.Collection, it content.Item) g.Node {
	return Div(Class("comments-section"),
		g.Attr("data-category", string(coll)),
		g.Attr("data-post-id", fmt.Sprintf("%d", it.ID)),
		H3(g.Text("Comentários")),
		Div(ID("comments-list")),
		FormEl(ID("comment-form"), Class("comment-form"),
			Input(Type("text"), Name("name"), Placeholder("Seu nome"), Required()),
			Input(Type("email"), Name("email"), Placeholder("Seu email"), Required()),
			Textarea(Name("comment"), Placeholder("Compartilhe sua reflexão..."), Required()),
			Button(Type("submit"), g.Text("Enviar comentário")),
		),
		Script(Src("/assets/js/comments.js")),
	)
}

func AboutPage() g.Node {
	return Layout(LayoutProps{Title: "Sobre - " + constants.APP_NAME, CurrentPage: "sobre"},
		Div(Class("container"),
			H2(Class("section-title"), g.Text("Sobre o Z3Z")),
			P(g.Text("O Z3Z é um espaço dedicado à poesia, à filosofia e à espiritualidade. Aqui, palavras são pontes entre a alma e o mundo.")),
			P(g.Text("Compartilhe suas reflexões conosco através dos comentários.")),
		),
	)
}

func NotFoundPage(message string) g.Node {
	if message == "" {
		message = "A página que você procura não foi encontrada."
	}
	return Layout(LayoutProps{Title: "404 - Página não encontrada", CurrentPage: "404"},
		Div(Class("container error-page"),
			H2(g.Text("404")),
			P(g.Text(message)),
			A(Href("/"), g.Text("Voltar ao início")),
		),
	)
}

func ErrorPage(message string) g.Node {
	if message == "" {
		message = "Algo deu errado no servidor."
	}
	return Layout(LayoutProps{Title: "Erro - " + constants.APP_NAME, CurrentPage: "error"},
		Div(Class("container error-page"),
			H2(g.Text("Erro interno")),
			P(g.Text(message)),
			A(Href("/"), g.Text("Voltar ao início")),
		),
	)
}
