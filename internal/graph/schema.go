package graph

// Schema is the GraphQL schema served at /graphql.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		getAllUsers: [UserResponse!]!
		getUserProfile: UserResponse!
		getAllProducts: [ProductResponse!]!
		getProductById(productId: ID!): ProductResponse!
		getCart: CartResponse!
	}

	type Mutation {
		signup(email: String!, password: String!, username: String!): SignupResponse!
		signin(email: String!, password: String!): SigninResponse!
		updateUserProfile(username: String!): UserResponse!
		createProduct(name: String!, description: String!, price: Float!, imageUrl: String!): ProductResponse!
		updateProduct(id: ID!, name: String, description: String, price: Float, imageUrl: String): ProductResponse!
		deleteProduct(id: ID!): DeleteProductResponse!
		addToCart(productId: ID!, quantity: Int!): AddToCartResponse!
		updateCartItem(itemId: ID!, quantity: Int!): CartResponse!
		removeCartItem(itemId: ID!): RemoveCartItemResponse!
		clearCart: ClearCartResponse!
	}

	enum Role {
		Admin
		User
	}

	type User {
		id: Int!
		email: String!
		username: String!
		role: Role
	}

	type SignupResponse {
		data: User!
	}

	type SigninResponse {
		token: String!
		data: User!
	}

	type UserResponse {
		data: User!
	}

	type Product {
		id: ID!
		name: String!
		description: String!
		price: Float!
		imageUrl: String
	}

	type ProductResponse {
		data: Product!
	}

	type DeleteProductResponse {
		message: String!
	}

	type CartItem {
		id: ID!
		product: Product!
		quantity: Int!
		createdAt: String!
		updatedAt: String!
	}

	type Cart {
		id: ID!
		userId: Int!
		items: [CartItem!]!
		createdAt: String!
		updatedAt: String!
	}

	type CartResponse {
		data: Cart!
	}

	type AddToCartResponse {
		message: String!
		cart: Cart!
	}

	type RemoveCartItemResponse {
		message: String!
	}

	type ClearCartResponse {
		message: String!
	}
`
