package walletapi

// GraphQL documents, with the exact field sets this client depends on.
const (
	loginMutation = `
mutation Login($input: LoginInput!) {
  login(input: $input) {
    id
    token
  }
}`

	registerMutation = `
mutation Register($input: RegisterInput!) {
  register(input: $input) {
    id
    email
    firstName
    lastName
  }
}`

	generateWalletMutation = `
mutation GenerateWallet {
  generateWallet {
    id
    address
    balance
    network
    mnemonic
    createdAt
    user {
      id
      email
      firstName
      lastName
    }
  }
}`

	transferFundsMutation = `
mutation TransferFunds($input: TransferFundsInput!) {
  transferFunds(input: $input) {
    hash
  }
}`

	getMeQuery = `
query GetMe {
  me {
    id
    email
    firstName
    lastName
    createdAt
    updatedAt
    suspended
    deleted
  }
}`

	getWalletBalanceQuery = `
query GetWalletBalance {
  getWalletBalance {
    address
    balance
    formattedBalance
    network
    usdValue
    lastUpdated
  }
}`

	getTransactionsQuery = `
query GetTransactions($page: Int, $pageSize: Int) {
  getTransactions(page: $page, pageSize: $pageSize) {
    hash
    from
    to
    value
    blockNumber
    timeStamp
    confirmations
    gas
    gasUsed
    transactionIndex
    isError
    txreceipt_status
  }
}`

	getTransactionQuery = `
query GetTransaction($hash: String!) {
  getTransaction(hash: $hash) {
    hash
    fromAddress
    toAddress
    value
    status
    timestamp
    blockNumber
    confirmations
    gasPrice
    gasUsed
    asset
    category
  }
}`

	getAddressBalanceQuery = `
query GetAddressBalance($address: String!) {
  getAddressBalance(address: $address) {
    address
    balance
    formattedBalance
    network
    usdValue
    lastUpdated
  }
}`
)
