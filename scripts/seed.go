package main

import (
	"log"

	"lumetric/internal/repository"
	"lumetric/internal/services"
	"lumetric/internal/utils"
)

// Seeds the launch articles when the blog_posts table is empty.
func main() {
	db, err := utils.InitDatabase("")
	if err != nil {
		log.Fatal("failed to initialize database: ", err)
	}

	postRepo := repository.NewPostRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	settingService := services.NewSettingService(settingRepo)
	postService := services.NewPostService(postRepo, settingService)

	count, err := postRepo.Count()
	if err != nil {
		log.Fatal("failed to count posts: ", err)
	}
	if count > 0 {
		log.Printf("blog_posts already holds %d records, nothing to seed", count)
		return
	}

	drafts := []services.PostDraft{
		{
			Title:    "O Fim do Tráfego Pago como Você Conhece",
			Category: "ESTRATÉGIA",
			Body: `O mercado mudou. A era do "clique barato" acabou. Se você ainda está jogando o jogo de 2019, sua empresa está sangrando dinheiro.

O algoritmo não quer mais o seu dinheiro de curto prazo; ele quer retenção. Plataformas como Meta e TikTok estão priorizando criativos que geram engajamento real, não apenas cliques acidentais.

### A Nova Regra de Ouro

Branding não é mais opcional. Branding é a única forma de diminuir o seu CAC a longo prazo.`,
			CoverImage: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?q=80&w=2070&auto=format&fit=crop",
			AuthorName: "Admin Lumetric",
		},
		{
			Title:    "Psicologia das Cores no Varejo de Luxo",
			Category: "DESIGN",
			Body: `O luxo não grita, ele sussurra. Neste artigo, exploramos como a ausência de cor pode valer mais do que o arco-íris inteiro.

Como o preto e o roxo influenciam a percepção de alto valor.`,
			CoverImage: "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?q=80&w=1964&auto=format&fit=crop",
			AuthorName: "Equipe Lumetric",
		},
		{
			Title:    "Engenharia de Menu: Vendendo sem Vender",
			Category: "VENDAS",
			Body: `A forma como você apresenta o preço muda tudo. Vamos dissecar a estrutura de um menu que converte 30% mais.

Técnicas de UX aplicadas a cardápios digitais que aumentam o ticket médio.`,
			CoverImage: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=2070&auto=format&fit=crop",
			AuthorName: "Admin Lumetric",
		},
	}

	for _, draft := range drafts {
		post, err := postService.Publish(draft)
		if err != nil {
			log.Fatalf("failed to seed post %q: %v", draft.Title, err)
		}
		log.Printf("seeded post %d: %s", post.ID, post.Slug)
	}
}
