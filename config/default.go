package config

// DefaultConfigYAML 内置默认配置，外部 config.yaml 可按需覆盖其中任意字段
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"

database:
  driver: "mysql"
  host: "127.0.0.1"
  port: "3306"
  username: "root"
  password: "root"
  dbname: "fintrack"
  charset: "utf8mb4"
  # driver 为 sqlite 时使用
  path: "fintrack.db"

jwt:
  secret: "fintrack-secret-change-me"
  expire_hours: 24

email:
  enabled: false
  host: "smtp.example.com"
  port: 465
  username: ""
  password: ""
  from: "记账系统"

redis:
  enabled: false
  addr: "127.0.0.1:6379"
  password: ""
  db: 0
`)
