package i18n

var catalog = map[string]map[string]string{
	LocalePT: {
		"error.invalid_request":         "Dados da requisição inválidos",
		"error.not_found":               "Recurso não encontrado",
		"error.product_not_found":       "Produto não encontrado",
		"error.category_not_found":      "Categoria não encontrada",
		"error.parent_not_found":        "Categoria pai não encontrada",
		"error.self_parent":             "Uma categoria não pode ser pai de si mesma",
		"error.category_in_use":         "Não é possível excluir: existem produtos nesta categoria",
		"error.category_has_children":   "Não é possível excluir: esta categoria possui subcategorias",
		"error.nothing_to_update":       "Nenhum campo para atualizar",
		"error.slug_taken":              "Slug já está em uso",
		"error.email_taken":             "Email já cadastrado",
		"error.invalid_credentials":     "Email ou senha incorretos",
		"error.weak_password":           "A senha deve ter pelo menos %d caracteres",
		"error.cart_empty":              "Carrinho vazio",
		"error.cart_item_not_found":     "Item do carrinho não encontrado",
		"error.invalid_quantity":        "Quantidade inválida",
		"error.order_not_found":         "Pedido não encontrado",
		"error.invalid_status":          "Status inválido",
		"error.review_not_found":        "Avaliação não encontrada",
		"error.invalid_rating":          "A nota deve ser entre 1 e 5",
		"error.already_reviewed":        "Você já avaliou este produto",
		"error.quote_not_found":         "Orçamento não encontrado",
		"error.user_not_found":          "Usuário não encontrado",
		"error.admin_not_found":         "Administrador não encontrado",
		"error.super_admin_protected":   "O super administrador não pode ser removido",
		"error.post_not_found":          "Publicação não encontrada",
		"error.blog_category_not_found": "Categoria do blog não encontrada",
		"error.comment_not_found":       "Comentário não encontrado",
		"error.unauthorized":            "Não autorizado",
		"error.forbidden":               "Acesso negado",
		"error.token_invalid":           "Token inválido ou expirado",
		"error.auth_header_missing":     "Cabeçalho de autorização ausente",
		"error.auth_header_invalid":     "Cabeçalho de autorização inválido",
		"error.jwt_secret_missing":      "Configuração de autenticação ausente",
		"error.too_many_attempts":       "Muitas tentativas. Tente novamente em %d segundos",
		"error.rate_limit_unavailable":  "Serviço temporariamente indisponível",
		"error.internal":                "Erro interno do servidor",
	},
	LocaleEN: {
		"error.invalid_request":         "Invalid request data",
		"error.not_found":               "Resource not found",
		"error.product_not_found":       "Product not found",
		"error.category_not_found":      "Category not found",
		"error.parent_not_found":        "Parent category not found",
		"error.self_parent":             "A category cannot be its own parent",
		"error.category_in_use":         "Cannot delete: products exist in this category",
		"error.category_has_children":   "Cannot delete: this category has subcategories",
		"error.nothing_to_update":       "No fields to update",
		"error.slug_taken":              "Slug already in use",
		"error.email_taken":             "Email already registered",
		"error.invalid_credentials":     "Incorrect email or password",
		"error.weak_password":           "Password must be at least %d characters",
		"error.cart_empty":              "Cart is empty",
		"error.cart_item_not_found":     "Cart item not found",
		"error.invalid_quantity":        "Invalid quantity",
		"error.order_not_found":         "Order not found",
		"error.invalid_status":          "Invalid status",
		"error.review_not_found":        "Review not found",
		"error.invalid_rating":          "Rating must be between 1 and 5",
		"error.already_reviewed":        "You already reviewed this product",
		"error.quote_not_found":         "Quote request not found",
		"error.user_not_found":          "User not found",
		"error.admin_not_found":         "Admin not found",
		"error.super_admin_protected":   "The super admin cannot be removed",
		"error.post_not_found":          "Post not found",
		"error.blog_category_not_found": "Blog category not found",
		"error.comment_not_found":       "Comment not found",
		"error.unauthorized":            "Unauthorized",
		"error.forbidden":               "Access denied",
		"error.token_invalid":           "Invalid or expired token",
		"error.auth_header_missing":     "Missing authorization header",
		"error.auth_header_invalid":     "Invalid authorization header",
		"error.jwt_secret_missing":      "Authentication is not configured",
		"error.too_many_attempts":       "Too many attempts. Try again in %d seconds",
		"error.rate_limit_unavailable":  "Service temporarily unavailable",
		"error.internal":                "Internal server error",
	},
}
