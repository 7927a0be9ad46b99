// Package i18n is the process-wide translation provider. Lookups are keyed by
// a selected locale; unknown keys fall through to the key itself so a missing
// string never breaks a page.
package i18n

const DefaultLang = "pt"

// Normalize clamps a requested locale to a supported one.
func Normalize(lang string) string {
	if _, ok := translations[lang]; ok {
		return lang
	}
	return DefaultLang
}

// T resolves key for lang, falling back to the default locale and finally to
// the key itself.
func T(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[DefaultLang][key]; ok {
		return s
	}
	return key
}

// Table returns the full string table for a locale, for handing to templates.
func Table(lang string) map[string]string {
	if table, ok := translations[lang]; ok {
		return table
	}
	return translations[DefaultLang]
}

var translations = map[string]map[string]string{
	"pt": {
		// Header
		"nav.manifesto": "Manifesto",
		"nav.services":  "Serviços",
		"nav.cases":     "Cases",
		"nav.access":    "Acesso",
		"nav.start":     "Começar",

		// Hero
		"hero.title":         "Não Busque Atenção.\nExija Obsessão.",
		"hero.subtitle":      "A LUMETRIC transforma tráfego frio em desejo ardente. Marketing de precisão para marcas que se recusam a ser ignoradas.",
		"hero.cta_primary":   "[ DOMINE O SEU MERCADO ]",
		"hero.cta_secondary": "LER ARTIGOS",

		// Manifesto
		"manifesto.title": "A Lógica por \ntrás do Caos.",
		"manifesto.text":  "O mercado digital está saturado de ruído. Nós somos o sinal. Acreditamos que o marketing moderno vive na intersecção entre a estética editorial e a brutalidade dos dados. Não criamos apenas campanhas; desenhamos ecossistemas de vendas onde cada pixel tem um propósito e cada clique é uma conquista.",
		"manifesto.cta":   "[ CONHEÇA NOSSO DNA ]",

		// Services
		"services.title":   "Arquitetura de \nCrescimento",
		"services.cta":     "[ ESCOLHA SUA ARMA ]",
		"services.s1.title": "Criação de Sites de Elite",
		"services.s1.desc":  "Desenvolvemos interfaces que não apenas informam, mas convertem. Arquitetura digital com design editorial e UX focado em exclusividade para posicionar sua marca no topo do mercado.",
		"services.s2.title": "Tráfego de Alta Performance",
		"services.s2.desc":  "Engenharia de aquisição através de segmentação cirúrgica. Escala agressiva em Meta e Google Ads para garantir que sua oferta apareça para quem tem capital, não apenas curiosidade.",
		"services.s3.title": "SEO & Dominação Orgânica",
		"services.s3.desc":  "Posicionamos sua marca no topo da cadeia alimentar do Google. Autoridade construída através de conteúdo estratégico que atrai tráfego qualificado de forma previsível e perene.",
		"services.s4.title": "Funis de Vendas Complexos",
		"services.s4.desc":  "Desenhamos a jornada completa do cliente, eliminando fricções e criando máquinas de vendas automatizadas que trabalham 24/7 para maximizar seu lucro e LTV.",
		"services.s5.title": "Social Media Marketing",
		"services.s5.desc":  "Transformamos perfis sociais em vitrines magnéticas. Conteúdo editorial que gera autoridade imediata e constrói uma comunidade de advogados fiéis ao redor da sua marca.",

		// Cases
		"cases.title":    "Resultados Reais. Não Apenas Promessas.",
		"cases.view_all": "Ver Todos",

		// Footer
		"footer.title":                "Esteja à Frente do Algoritmo.",
		"footer.subtitle":             "Estratégias validadas, tendências de mercado e atualizações da LUMETRIC direto no seu dispositivo. Sem spam, apenas lucro.",
		"footer.email_placeholder":    "Digite seu melhor E-mail",
		"footer.whatsapp_placeholder": "Seu número de WhatsApp",
		"footer.cta":                  "GARANTIR MEU ACESSO",
		"footer.privacy":              "Política de Privacidade",
		"footer.terms":                "Termos de Serviço",
		"footer.rights":               "© 2024 LUMETRIC. Todos os direitos reservados.",
		"footer.alert_success":        "Inscrição confirmada! Você agora está à frente do algoritmo.",
		"footer.alert_error":          "Ocorreu um erro ao processar sua inscrição.",

		// Blog UI
		"blog.back_home":          "Voltar para Home",
		"blog.back_grid":          "Voltar para o Grid",
		"blog.loading":            "Carregando conhecimento...",
		"blog.load_error":         "Erro ao carregar o feed de artigos.",
		"blog.read_now":           "Ler Agora",
		"blog.search_placeholder": "O que você busca dominar hoje?",
		"blog.empty_search":       "Nenhum artigo encontrado. Tente outro termo de busca.",
		"blog.cta_elite_title":    "Elite Only",
		"blog.cta_title":          "Você tem o conhecimento.\nNós temos a audiência.",
		"blog.cta_subtitle":       "Junte-se ao conselho editorial da Lumetric. Publique seus insights para milhares de empreendedores e construa sua autoridade digital.",
		"blog.cta_button":         "Não Busque Atenção. Publique Aqui.",
		"blog.admin_area":         "Área Restrita",
		"blog.publish_btn":        "Publicar Matéria",
		"blog.cancel_btn":         "Cancelar",
		"blog.share_obsession":    "Espalhe a Obsessão",
		"blog.copy_success":       "Link de Dominação Copiado",
		"blog.publish_success":    "Artigo publicado e salvo no banco!",
		"blog.publish_error":      "Erro ao publicar artigo. Verifique sua conexão com o banco.",
		"blog.apply_success":      "Aplicação enviada! Analisaremos seu perfil.",
		"blog.apply_error":        "Erro ao enviar. Tente novamente.",
		"blog.login_denied":       "Acesso Negado: Senha Incorreta.",
		"blog.profile_saved":      "Perfil atualizado localmente.",

		// Consultation Modal
		"modal.title":       "Aplicação para Consultoria",
		"modal.subtitle":    "Preencha com precisão",
		"modal.success_title": "Aplicação Recebida",
		"modal.success_desc":  "Nossa equipe de estratégia analisará seu perfil. Se houver fit, entraremos em contato em até 24 horas.",
		"modal.step3_desc":  "Qual é o maior obstáculo do seu negócio hoje?",
		"modal.name":        "Nome Completo",
		"modal.email":       "E-mail Corporativo",
		"modal.whatsapp":    "WhatsApp",
		"modal.site":        "Site ou Instagram",
		"modal.submit":      "[ APLICAR PARA CONSULTORIA ]",
	},
	"en": {
		// Header
		"nav.manifesto": "Manifesto",
		"nav.services":  "Services",
		"nav.cases":     "Cases",
		"nav.access":    "Access",
		"nav.start":     "Start",

		// Hero
		"hero.title":         "Don't Seek Attention.\nDemand Obsession.",
		"hero.subtitle":      "LUMETRIC turns cold traffic into burning desire. Precision marketing for brands that refuse to be ignored.",
		"hero.cta_primary":   "[ DOMINATE YOUR MARKET ]",
		"hero.cta_secondary": "READ ARTICLES",

		// Manifesto
		"manifesto.title": "The Logic \nbehind the Chaos.",
		"manifesto.text":  "The digital market is saturated with noise. We are the signal. We believe modern marketing lives at the intersection of editorial aesthetics and data brutality. We don't just create campaigns; we design sales ecosystems where every pixel has a purpose and every click is a conquest.",
		"manifesto.cta":   "[ KNOW OUR DNA ]",

		// Services
		"services.title":   "Growth \nArchitecture",
		"services.cta":     "[ CHOOSE YOUR WEAPON ]",
		"services.s1.title": "Elite Website Creation",
		"services.s1.desc":  "We develop interfaces that don't just inform, but convert. Digital architecture with editorial design and UX focused on exclusivity to position your brand at the top of the market.",
		"services.s2.title": "High Performance Traffic",
		"services.s2.desc":  "Acquisition engineering through surgical targeting. Aggressive scale in Meta and Google Ads to ensure your offer appears to those with capital, not just curiosity.",
		"services.s3.title": "SEO & Organic Domination",
		"services.s3.desc":  "We position your brand at the top of Google's food chain. Authority built through strategic content that attracts qualified traffic predictably and permanently.",
		"services.s4.title": "Complex Sales Funnels",
		"services.s4.desc":  "We design the complete customer journey, eliminating friction and creating automated sales machines that work 24/7 to maximize your profit and LTV.",
		"services.s5.title": "Social Media Marketing",
		"services.s5.desc":  "We transform social profiles into magnetic showcases. Editorial content that generates immediate authority and builds a loyal community of advocates around your brand.",

		// Cases
		"cases.title":    "Real Results. Not Just Promises.",
		"cases.view_all": "View All",

		// Footer
		"footer.title":                "Stay Ahead of the Algorithm.",
		"footer.subtitle":             "Validated strategies, market trends, and LUMETRIC updates straight to your device. No spam, just profit.",
		"footer.email_placeholder":    "Enter your best E-mail",
		"footer.whatsapp_placeholder": "Your WhatsApp number",
		"footer.cta":                  "SECURE MY ACCESS",
		"footer.privacy":              "Privacy Policy",
		"footer.terms":                "Terms of Service",
		"footer.rights":               "© 2024 LUMETRIC. All rights reserved.",
		"footer.alert_success":        "Subscription confirmed! You are now ahead of the algorithm.",
		"footer.alert_error":          "An error occurred while processing your subscription.",

		// Blog UI
		"blog.back_home":          "Back to Home",
		"blog.back_grid":          "Back to Grid",
		"blog.loading":            "Loading knowledge...",
		"blog.load_error":         "Failed to load the article feed.",
		"blog.read_now":           "Read Now",
		"blog.search_placeholder": "What do you seek to master today?",
		"blog.empty_search":       "No articles found. Try another search term.",
		"blog.cta_elite_title":    "Elite Only",
		"blog.cta_title":          "You have the knowledge.\nWe have the audience.",
		"blog.cta_subtitle":       "Join the Lumetric editorial board. Publish your insights to thousands of entrepreneurs and build your digital authority.",
		"blog.cta_button":         "Don't Seek Attention. Publish Here.",
		"blog.admin_area":         "Restricted Area",
		"blog.publish_btn":        "Publish Article",
		"blog.cancel_btn":         "Cancel",
		"blog.share_obsession":    "Spread the Obsession",
		"blog.copy_success":       "Link Copied",
		"blog.publish_success":    "Article published and saved!",
		"blog.publish_error":      "Failed to publish the article. Check the database connection.",
		"blog.apply_success":      "Application sent! We will review your profile.",
		"blog.apply_error":        "Failed to send. Try again.",
		"blog.login_denied":       "Access Denied: Wrong Password.",
		"blog.profile_saved":      "Profile updated locally.",

		// Consultation Modal
		"modal.title":       "Application for Consultancy",
		"modal.subtitle":    "Fill with precision",
		"modal.success_title": "Application Received",
		"modal.success_desc":  "Our strategy team will analyze your profile. If there is a fit, we will contact you within 24 hours.",
		"modal.step3_desc":  "What is the biggest obstacle for your business today?",
		"modal.name":        "Full Name",
		"modal.email":       "Corporate E-mail",
		"modal.whatsapp":    "WhatsApp",
		"modal.site":        "Website or Instagram",
		"modal.submit":      "[ APPLY FOR CONSULTANCY ]",
	},
}
